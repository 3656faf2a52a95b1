package shell

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/google/shlex"
	"github.com/joshyorko/scriptboard/common"
)

type Task struct {
	environment []string
	directory   string
	executable  string
	args        []string
}

// New creates a task; nil environment means inherit the current one.
func New(environment []string, directory string, task ...string) *Task {
	executable, args := "", []string{}
	if len(task) > 0 {
		executable, args = task[0], task[1:]
	}
	return &Task{
		environment: environment,
		directory:   directory,
		executable:  executable,
		args:        args,
	}
}

func Split(commandline string) ([]string, error) {
	return shlex.Split(commandline)
}

func (it *Task) String() string {
	return fmt.Sprintf("%s %q", it.executable, it.args)
}

func (it *Task) command() *exec.Cmd {
	command := exec.Command(it.executable, it.args...)
	if it.environment != nil {
		command.Env = it.environment
	}
	command.Dir = it.directory
	return command
}

// Execute runs the task in the foreground, attached to the current console,
// and returns its exit code. A process that ran but failed is not an error.
func (it *Task) Execute(interactive bool) (int, error) {
	if len(it.executable) == 0 {
		return -1, errors.New("nothing to execute")
	}
	command := it.command()
	if interactive {
		command.Stdin = os.Stdin
	}
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr
	common.Debug("Executing %s in %q", it, it.directory)
	err := command.Run()
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		return exit.ExitCode(), nil
	}
	if err != nil {
		return -1, err
	}
	return 0, nil
}

// Detach starts the task in its own session or process group and returns
// without waiting for it. The child is reaped in the background.
func (it *Task) Detach() (int, error) {
	if len(it.executable) == 0 {
		return -1, errors.New("nothing to execute")
	}
	command := it.command()
	detachProcess(command)
	common.Debug("Detaching %s in %q", it, it.directory)
	err := command.Start()
	if err != nil {
		return -1, err
	}
	pid := command.Process.Pid
	go func() {
		err := command.Wait()
		common.Trace("Detached process %d finished: %v", pid, err)
	}()
	return pid, nil
}
