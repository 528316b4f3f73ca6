package spinner

// Task is a spinner tied to a function running in the background.
type Task struct {
	Spinner *Spinner

	done chan struct{}
	err  error
}

// Promise starts a spinner and runs fn. The spinner succeeds when fn returns
// nil and fails otherwise.
func Promise(fn func() error, cfg Config) (*Task, error) {
	s, err := New(cfg)
	if err != nil {
		return nil, err
	}

	t := &Task{Spinner: s, done: make(chan struct{})}

	s.Start()

	go func() {
		defer close(t.done)

		t.err = fn()
		if t.err != nil {
			s.Fail()
		} else {
			s.Succeed()
		}
	}()

	return t, nil
}

// Wait blocks until the outcome is written and returns what fn returned.
func (t *Task) Wait() error {
	<-t.done
	return t.err
}
