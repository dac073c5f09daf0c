package dice

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

type RollResult struct {
	Count    int
	Sides    int
	Bonus    int
	Rolls    []int
	RawTotal int
	Total    int
}

// Roll rolls count dice of the given size and adds bonus to the total
func Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, dnderr.InvalidArgumentf("invalid dice count %d", count)
	}
	if sides < 1 {
		return nil, dnderr.InvalidArgumentf("invalid dice size %d", sides)
	}

	out := make([]int, count)
	raw := 0
	for i := range out {
		out[i] = rand.Intn(sides) + 1
		raw += out[i]
	}

	log.Printf("Rolled %dd%d: %v total %d", count, sides, out, raw+bonus)
	return &RollResult{
		Count:    count,
		Sides:    sides,
		Bonus:    bonus,
		Rolls:    out,
		RawTotal: raw,
		Total:    raw + bonus,
	}, nil
}

func (r *RollResult) String() string {
	expr := fmt.Sprintf("%dd%d", r.Count, r.Sides)
	if r.Bonus > 0 {
		expr += fmt.Sprintf("+%d", r.Bonus)
	} else if r.Bonus < 0 {
		expr += fmt.Sprintf("%d", r.Bonus)
	}
	rolls := strings.ReplaceAll(fmt.Sprint(r.Rolls), " ", ",")
	return fmt.Sprintf("%s = %d %s", expr, r.Total, rolls)
}
