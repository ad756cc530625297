package task

import (
	"errors"
	"fmt"
)

var ErrInvalidProgress = errors.New("progress must be between 0 and 100")

const Complete = 100.0

// SubTask is a unit of progress inside a study task. Whether it is
// completed is derived from its progress.
type SubTask struct {
	Name     string
	Comments string
	progress float64
}

func NewSubTask(name, comments string, progress float64) (*SubTask, error) {
	s := &SubTask{Name: name, Comments: comments}
	if err := s.SetProgress(progress); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SubTask) Progress() float64 {
	return s.progress
}

// SetProgress updates the progress. Values outside [0, 100], NaN included,
// are rejected and leave the subtask unchanged.
func (s *SubTask) SetProgress(p float64) error {
	if !(p >= 0 && p <= Complete) {
		return fmt.Errorf("%w: got %g", ErrInvalidProgress, p)
	}
	s.progress = p
	return nil
}

func (s *SubTask) Completed() bool {
	return s.progress == Complete
}

func (s *SubTask) String() string {
	return fmt.Sprintf("%s (%g%%)", s.Name, s.progress)
}
