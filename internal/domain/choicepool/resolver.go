package choicepool

import (
	"fmt"

	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/prerequisite"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
)

// QuotaAt is the cumulative number of options a character may hold from the
// pool at classLevel: the highest breakpoint at or below it, 0 before the first.
func QuotaAt(pool *rulebook.ChoicePool, classLevel int) int {
	quota := 0
	for _, bp := range pool.Quota {
		if bp.Level > classLevel {
			break
		}
		quota = bp.Total
	}
	return quota
}

// Violation is one broken rule
type Violation struct {
	Reason  dnderr.Reason
	Message string
}

// Result collects every violation found
type Result struct {
	Violations []Violation
}

func (r *Result) add(reason dnderr.Reason, format string, args ...any) {
	r.Violations = append(r.Violations, Violation{Reason: reason, Message: fmt.Sprintf(format, args...)})
}

// OK reports whether no rule was broken
func (r *Result) OK() bool {
	return len(r.Violations) == 0
}

// Err converts the result into a validation error; the first violation sets the reason
func (r *Result) Err() error {
	if r.OK() {
		return nil
	}
	messages := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		messages[i] = v.Message
	}
	return dnderr.Validation(r.Violations[0].Reason, messages...)
}

// Selection is a proposal to add options to a pool
type Selection struct {
	Pool       *rulebook.ChoicePool
	ClassLevel int

	// Held are the options already held before the proposal
	Held     []string
	Proposed []string

	// Subject is checked against each proposed option's prerequisite. Nil skips the check.
	Subject *prerequisite.Subject

	// HeldFeatures are feature keys the character already has from any
	// source. An option granting one of them again is a duplicate.
	HeldFeatures map[string]bool
}

// ValidateSelection checks quota, duplicates, membership, features already
// granted elsewhere and prerequisites
func ValidateSelection(sel *Selection) *Result {
	result := &Result{}

	held := make(map[string]bool, len(sel.Held))
	for _, k := range sel.Held {
		held[k] = true
	}

	if quota := QuotaAt(sel.Pool, sel.ClassLevel); len(sel.Held)+len(sel.Proposed) > quota {
		result.add(dnderr.ReasonQuotaExceeded, "%s allows %d at level %d, %d selected",
			sel.Pool.Name, quota, sel.ClassLevel, len(sel.Held)+len(sel.Proposed))
	}

	seen := make(map[string]bool, len(sel.Proposed))
	for _, key := range sel.Proposed {
		if seen[key] || held[key] {
			result.add(dnderr.ReasonDuplicateOption, "%s selected more than once", key)
			continue
		}
		seen[key] = true

		option, ok := sel.Pool.Option(key)
		if !ok {
			result.add(dnderr.ReasonUnknownOption, "%s is not part of %s", key, sel.Pool.Name)
			continue
		}
		checkGrantedFeatures(result, option, sel.HeldFeatures, nil)
		checkPrerequisite(result, option, sel.Subject)
	}

	return result
}

// Replacement swaps one held option for another in a single step
type Replacement struct {
	Pool      *rulebook.ChoicePool
	Held      []string
	OldOption string
	NewOption string
	Subject   *prerequisite.Subject

	// HeldFeatures as in Selection. Features of OldOption are treated as gone.
	HeldFeatures map[string]bool
}

// ValidateReplacement requires Old to be held, New to be a pool option not held, and Old != New.
// The prerequisite of New is evaluated as if Old had already been removed.
func ValidateReplacement(rep *Replacement) *Result {
	result := &Result{}

	if rep.OldOption == rep.NewOption {
		result.add(dnderr.ReasonDuplicateOption, "%s cannot replace itself", rep.OldOption)
		return result
	}

	isHeld := make(map[string]bool, len(rep.Held))
	for _, k := range rep.Held {
		isHeld[k] = true
	}
	if !isHeld[rep.OldOption] {
		result.add(dnderr.ReasonUnknownOption, "%s is not held", rep.OldOption)
	}
	if isHeld[rep.NewOption] {
		result.add(dnderr.ReasonDuplicateOption, "%s is already held", rep.NewOption)
	}

	option, ok := rep.Pool.Option(rep.NewOption)
	if !ok {
		result.add(dnderr.ReasonUnknownOption, "%s is not part of %s", rep.NewOption, rep.Pool.Name)
		return result
	}

	subject := rep.Subject
	if subject != nil && subject.HeldOptions[rep.OldOption] {
		swapped := *subject
		swapped.HeldOptions = make(map[string]bool, len(subject.HeldOptions))
		for k, v := range subject.HeldOptions {
			swapped.HeldOptions[k] = v
		}
		delete(swapped.HeldOptions, rep.OldOption)
		subject = &swapped
	}
	var released []*rulebook.Feature
	if old, ok := rep.Pool.Option(rep.OldOption); ok {
		released = old.GrantsFeatures
	}
	checkGrantedFeatures(result, option, rep.HeldFeatures, released)
	checkPrerequisite(result, option, subject)

	return result
}

// ApplyReplacement returns a new held list with Old replaced by New in place
func ApplyReplacement(held []string, oldOption, newOption string) ([]string, error) {
	out := make([]string, len(held))
	found := false
	for i, k := range held {
		if k == oldOption && !found {
			out[i] = newOption
			found = true
			continue
		}
		out[i] = k
	}
	if !found {
		return nil, dnderr.Validationf(dnderr.ReasonUnknownOption, "%s is not held", oldOption)
	}
	return out, nil
}

// checkGrantedFeatures flags a non-stacking feature the option would grant a
// second time, such as one fighting style taken through two classes
func checkGrantedFeatures(result *Result, option *rulebook.PoolOption, held map[string]bool, released []*rulebook.Feature) {
	for _, f := range option.GrantsFeatures {
		if f.Stacking || !held[f.Key] || grantsKey(released, f.Key) {
			continue
		}
		result.add(dnderr.ReasonDuplicateOption, "%s already has %s", option.Name, f.Name)
	}
}

func grantsKey(features []*rulebook.Feature, key string) bool {
	for _, f := range features {
		if f.Key == key {
			return true
		}
	}
	return false
}

func checkPrerequisite(result *Result, option *rulebook.PoolOption, subject *prerequisite.Subject) {
	if subject == nil || option.Prerequisite.IsEmpty() {
		return
	}
	eval := prerequisite.Evaluate(option.Prerequisite, subject)
	for _, reason := range eval.Reasons {
		result.add(dnderr.ReasonPrerequisiteUnmet, "%s %s", option.Name, reason)
	}
}
