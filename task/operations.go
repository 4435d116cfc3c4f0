package task

import (
	"fmt"
	"slices"
)

// DeletePrompt is the confirmation asked before Delete.
const DeletePrompt = "Are you sure you want to delete this task?"

// Create adds a task at the front of the collection.
//
// A non-empty datetime must parse and lie strictly after the current time.
// Empty text is rejected with ErrEmptyText, which shells drop silently.
func (s *Store) Create(text, datetime string) (*Task, error) {
	now := s.now()
	text, datetime, err := validateInput(text, datetime, now)
	if err != nil {
		return nil, err
	}

	created := Task{
		ID:       s.ids.next(now),
		Text:     text,
		Datetime: datetime,
	}

	next := make([]Task, 0, len(s.tasks)+1)
	next = append(next, created)
	next = append(next, s.tasks...)
	if err := s.commit(next); err != nil {
		return nil, err
	}

	return &created, nil
}

// Toggle flips the completion flag of the task with id, keeping its position.
// An unknown id changes nothing and returns a nil task; the collection is
// still persisted and re-rendered.
func (s *Store) Toggle(id int64) (*Task, error) {
	next := slices.Clone(s.tasks)
	var toggled *Task
	if index := indexOf(next, id); index >= 0 {
		next[index].Completed = !next[index].Completed
		updated := next[index]
		toggled = &updated
	}

	if err := s.commit(next); err != nil {
		return nil, err
	}
	return toggled, nil
}

// Edit replaces the text and reminder of the task with id in place.
//
// Validation matches Create; on failure the collection is untouched.
// A nil error means the edit is done and the editing surface may close.
// An unknown id behaves like Toggle's: nil task, still persisted.
func (s *Store) Edit(id int64, text, datetime string) (*Task, error) {
	text, datetime, err := validateInput(text, datetime, s.now())
	if err != nil {
		return nil, err
	}

	next := slices.Clone(s.tasks)
	var edited *Task
	if index := indexOf(next, id); index >= 0 {
		next[index].Text = text
		next[index].Datetime = datetime
		updated := next[index]
		edited = &updated
	}

	if err := s.commit(next); err != nil {
		return nil, err
	}
	return edited, nil
}

// Delete removes the task with id after the user confirms.
// If p is nil the store's prompter is asked. Declining is not an error.
// It reports whether a task was removed.
func (s *Store) Delete(id int64, p Prompter) (bool, error) {
	confirmed, err := s.confirm(p, DeletePrompt)
	if err != nil {
		return false, err
	}
	if !confirmed {
		return false, nil
	}

	next := slices.DeleteFunc(slices.Clone(s.tasks), func(t Task) bool { return t.ID == id })
	removed := len(next) < len(s.tasks)
	if err := s.commit(next); err != nil {
		return false, err
	}
	if removed {
		s.logger.Printf("deleted task %d", id)
	}
	return removed, nil
}

// ClearPlan describes what ClearByFilter would do under a filter.
type ClearPlan struct {
	// Filter is the filter the plan was made under.
	Filter Filter

	// Remove lists the tasks that would be removed, in collection order.
	Remove []Task

	// Keep lists the surviving tasks, in collection order.
	Keep []Task

	// Prompt is the confirmation message for this plan.
	Prompt string
}

// Empty reports whether the plan removes nothing.
func (p ClearPlan) Empty() bool {
	return len(p.Remove) == 0
}

// PlanClear computes what clearing under filter removes, without asking or
// changing anything. Under FilterAll everything goes; otherwise the store's
// ClearMode decides which side of the filter is removed.
func (s *Store) PlanClear(filter Filter) (ClearPlan, error) {
	if !filter.IsValid() {
		return ClearPlan{}, fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}

	target := clearTarget(filter, s.clearMode)
	plan := ClearPlan{
		Filter: filter,
		Remove: []Task{},
		Keep:   []Task{},
		Prompt: clearPrompt(target),
	}
	for _, t := range s.tasks {
		if target.Match(t) {
			plan.Remove = append(plan.Remove, t)
		} else {
			plan.Keep = append(plan.Keep, t)
		}
	}
	return plan, nil
}

// ClearByFilter removes tasks in bulk according to PlanClear.
// It returns ErrNothingToClear without prompting when nothing would go.
// If p is nil the store's prompter is asked. Declining returns 0 and no error.
func (s *Store) ClearByFilter(filter Filter, p Prompter) (int, error) {
	plan, err := s.PlanClear(filter)
	if err != nil {
		return 0, err
	}
	if plan.Empty() {
		return 0, ErrNothingToClear
	}

	confirmed, err := s.confirm(p, plan.Prompt)
	if err != nil {
		return 0, err
	}
	if !confirmed {
		return 0, nil
	}

	if err := s.commit(plan.Keep); err != nil {
		return 0, err
	}
	s.logger.Printf("cleared %d tasks under filter %s", len(plan.Remove), filter)
	return len(plan.Remove), nil
}

// clearTarget returns the filter whose matches a clear removes.
func clearTarget(filter Filter, mode ClearMode) Filter {
	if mode == ClearMatching {
		return filter
	}
	switch filter {
	case FilterActive:
		return FilterCompleted
	case FilterCompleted:
		return FilterActive
	default:
		return FilterAll
	}
}

func clearPrompt(target Filter) string {
	if target == FilterAll {
		return "Are you sure you want to clear all tasks?"
	}
	return fmt.Sprintf("Are you sure you want to clear all %s tasks?", target)
}

func (s *Store) confirm(p Prompter, message string) (bool, error) {
	if p == nil {
		p = s.prompter
	}
	confirmed, err := p.Confirm(message)
	if err != nil {
		return false, fmt.Errorf("prompt: %w", err)
	}
	return confirmed, nil
}
