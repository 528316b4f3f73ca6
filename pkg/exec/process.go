package exec

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/kr/pty"

	"github.com/elseano/whirl/pkg/util"
)

// Process runs a command with its output captured, optionally behind a pseudo
// terminal so the command still believes it is interactive.
type Process struct {
	cmd       *exec.Cmd
	usePty    bool
	output    lockedBuffer
	waitGroup sync.WaitGroup
	pty       *os.File
}

type ProcessOption func(*Process)

// WithPty runs the command attached to a pseudo terminal sized like stdin.
func WithPty(usePty bool) ProcessOption {
	return func(p *Process) {
		p.usePty = usePty
	}
}

func NewProcess(cmd *exec.Cmd, opts ...ProcessOption) *Process {
	p := &Process{cmd: cmd}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Process) Start() error {
	if !p.usePty {
		p.cmd.Stdout = &p.output
		p.cmd.Stderr = &p.output

		return p.cmd.Start()
	}

	var err error
	if p.pty, err = pty.Start(p.cmd); err != nil {
		return err
	}

	if err := pty.InheritSize(os.Stdin, p.pty); err != nil {
		util.Logger.Debug().Err(err).Msg("Could not size PTY")
	}

	p.waitGroup.Add(1)

	// Copy PTY to the capture buffer. Reads fail once the command exits.
	go func() {
		defer p.waitGroup.Done()

		w, _ := io.Copy(&p.output, p.pty)
		util.Logger.Trace().Msgf("PTY closed, bytes captured: %d", w)
	}()

	return nil
}

// Wait blocks until the command exits and all of its output is captured.
func (p *Process) Wait() (*Result, error) {
	waitErr := p.cmd.Wait()
	p.waitGroup.Wait()

	if p.pty != nil {
		p.pty.Close()
	}

	result := &Result{Output: p.output.Bytes(), ExitCode: determineExitCode(waitErr)}

	if _, ok := waitErr.(*exec.ExitError); ok || waitErr == nil {
		return result, nil
	}

	return result, waitErr
}

// Run starts the command and waits for it.
func (p *Process) Run() (*Result, error) {
	if err := p.Start(); err != nil {
		return nil, err
	}

	return p.Wait()
}

type Result struct {
	Output   []byte
	ExitCode int
}

func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Text returns the captured output with carriage returns collapsed, as a
// terminal would have left it.
func (r *Result) Text() string {
	return util.CollapseReturns(string(r.Output))
}

func determineExitCode(waitErr error) int {
	exitCode := 0

	if exitErr, ok := waitErr.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	}

	util.Logger.Trace().Msgf("Terminated with %d", exitCode)

	return exitCode
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.buf.Bytes()...)
}
