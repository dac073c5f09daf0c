package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

func TestValidationKeepsEveryReason(t *testing.T) {
	err := dnderr.Validation(dnderr.ReasonQuotaExceeded, "too many picks", "agonizing-blast requires eldritch-blast")

	assert.True(t, dnderr.IsValidation(err))
	assert.Equal(t, dnderr.ReasonQuotaExceeded, dnderr.GetReason(err))
	assert.Len(t, dnderr.GetReasons(err), 2)
	assert.Contains(t, err.Error(), "too many picks")
}

func TestValidationSingleReasonIsMessage(t *testing.T) {
	err := dnderr.Validation(dnderr.ReasonDuplicateOption, "option repeated")

	assert.Equal(t, "option repeated", err.Error())
	assert.Equal(t, []string{"option repeated"}, dnderr.GetReasons(err))
}

func TestWrapPreservesCodeAndReason(t *testing.T) {
	inner := dnderr.Persistence(dnderr.ReasonVersionConflict, "character changed").WithMeta("character_id", "c1")
	wrapped := dnderr.Wrap(inner, "commit level up")

	assert.True(t, dnderr.IsPersistence(wrapped))
	assert.Equal(t, dnderr.ReasonVersionConflict, dnderr.GetReason(wrapped))
	assert.Equal(t, "c1", dnderr.GetMeta(wrapped)["character_id"])

	wrapped.WithMeta("extra", true)
	assert.NotContains(t, inner.Meta, "extra")
}

func TestWrapForeignError(t *testing.T) {
	wrapped := dnderr.Wrapf(fmt.Errorf("boom"), "loading %s", "x")

	assert.Equal(t, dnderr.CodeUnknown, dnderr.GetCode(wrapped))
	assert.Equal(t, dnderr.Reason(""), dnderr.GetReason(wrapped))
	assert.Nil(t, dnderr.Wrap(nil, "nothing"))
}

func TestWithStep(t *testing.T) {
	err := dnderr.Validationf(dnderr.ReasonASIBudgetMismatch, "budget is %d", 2).WithStep(3)

	assert.Equal(t, 3, dnderr.GetMeta(err)["step"])
}

func TestGetReasonsThroughWrap(t *testing.T) {
	inner := dnderr.Validationf(dnderr.ReasonASIBudgetMismatch, "increases must total 2, got 3")
	wrapped := dnderr.Wrapf(inner, "step %s", "select_ability_or_feat").WithStep(2)

	assert.Equal(t, []string{"increases must total 2, got 3"}, dnderr.GetReasons(wrapped))
	assert.Equal(t, dnderr.ReasonASIBudgetMismatch, dnderr.GetReason(wrapped))
	assert.Equal(t, []string{"boom"}, dnderr.GetReasons(fmt.Errorf("boom")))
}
