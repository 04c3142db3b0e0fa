package itinerary

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/weekendguide/berlin/pkg/catalog"
)

var ErrActivityNotFound = errors.New("activity not found")

const idPrefix = "activity_"

type Activity struct {
	Index    int
	Day      string
	Time     string
	Name     string
	Location string
	Duration string
	// Cost is as displayed: "Free", "12" or a range such as "12-20".
	Cost string
	Tips string
}

// ID is the key under which the activity is stored in the completed set.
func (a Activity) ID() string {
	return ActivityID(a.Index)
}

// MaxCostCents is the upper bound of the cost range. Unparsable costs count as zero.
func (a Activity) MaxCostCents() int64 {
	cents, free, err := catalog.ParsePrice(a.Cost)
	if err != nil {
		log.Warnf("activity %d has invalid cost %q: %v", a.Index, a.Cost, err)
		return 0
	}
	if free {
		return 0
	}
	return cents
}

func ActivityID(index int) string {
	return idPrefix + strconv.Itoa(index)
}

// ParseActivityID is the inverse of ActivityID.
func ParseActivityID(id string) (int, error) {
	raw, ok := strings.CutPrefix(id, idPrefix)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrActivityNotFound, id)
	}
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("%w: %q", ErrActivityNotFound, id)
	}
	return index, nil
}

// Plan is an ordered list of activities, indexed from zero.
type Plan struct {
	activities []Activity
}

func NewPlan(activities []Activity) *Plan {
	plan := &Plan{activities: make([]Activity, len(activities))}
	for i, activity := range activities {
		activity.Index = i
		plan.activities[i] = activity
	}
	return plan
}

func (p *Plan) Activities() []Activity {
	result := make([]Activity, len(p.activities))
	copy(result, p.activities)
	return result
}

func (p *Plan) Len() int {
	return len(p.activities)
}

func (p *Plan) Get(index int) (Activity, bool) {
	if index < 0 || index >= len(p.activities) {
		return Activity{}, false
	}
	return p.activities[index], true
}

// Has reports whether id names an activity of the plan.
func (p *Plan) Has(id string) bool {
	index, err := ParseActivityID(id)
	if err != nil {
		return false
	}
	_, ok := p.Get(index)
	return ok
}

// Days returns the distinct days in plan order.
func (p *Plan) Days() []string {
	var days []string
	for _, activity := range p.activities {
		if len(days) == 0 || days[len(days)-1] != activity.Day {
			days = append(days, activity.Day)
		}
	}
	return days
}

type Summary struct {
	// RemainingCents is the sum of the upper cost bounds of activities not yet completed.
	RemainingCents int64
	// RemainingEuros is RemainingCents rounded to whole euros for display.
	RemainingEuros int64
	Completed      int
	Total          int
}

func (s Summary) Progress() string {
	return fmt.Sprintf("%d/%d", s.Completed, s.Total)
}

// Summarize counts completed activities and prices the remaining ones.
// Completed ids that do not belong to the plan are ignored.
func (p *Plan) Summarize(completedIDs []string) Summary {
	completed := make(map[int]bool, len(completedIDs))
	for _, id := range completedIDs {
		index, err := ParseActivityID(id)
		if err != nil {
			continue
		}
		if _, ok := p.Get(index); ok {
			completed[index] = true
		}
	}

	summary := Summary{Completed: len(completed), Total: len(p.activities)}
	for _, activity := range p.activities {
		if !completed[activity.Index] {
			summary.RemainingCents += activity.MaxCostCents()
		}
	}
	summary.RemainingEuros = int64(math.Round(float64(summary.RemainingCents) / 100))
	return summary
}
