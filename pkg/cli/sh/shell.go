// Package sh provides the interactive bench shell.
package sh

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	"github.com/robotalks/bringup/pkg/board"
	"github.com/robotalks/bringup/pkg/report"
	"github.com/robotalks/bringup/pkg/report/sink"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool

	Shell     *ishell.Shell
	Config    *board.Config
	Publisher *report.Publisher

	sink io.Closer
}

const shellKey = "$shell"

var (
	// flags

	evalOnly   bool
	outputJSON bool

	// commands
	commands = []*ishell.Cmd{
		&BoardCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *board.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(conf.ID + " > ")
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// Context returns the context for running a command.
func Context(c *ishell.Context) context.Context {
	return context.Background()
}

// Output prints v as JSON in JSON mode, text otherwise.
func Output(c *ishell.Context, v interface{}, text string) {
	if ShellFrom(c).OutputJSON {
		out, err := json.Marshal(v)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(out))
		return
	}
	c.Println(text)
}

// Publish publishes r if a report sink is open. Failures are logged only.
func Publish(c *ishell.Context, r report.Report) {
	if p := ShellFrom(c).Publisher; p != nil {
		if err := p.Publish(r); err != nil {
			glog.Warningf("publish report: %v", err)
		}
	}
}

// OpenReports opens the report sink configured for the board.
func (s *Shell) OpenReports() error {
	if s.Config.ReportURL == "" {
		return nil
	}
	pub, w, err := sink.OpenPublisher(s.Config.ReportURL, s.Config.ID)
	if err != nil {
		return err
	}
	s.Publisher, s.sink = pub, w
	return nil
}

// Close closes the report sink.
func (s *Shell) Close() error {
	if s.sink != nil {
		return s.sink.Close()
	}
	return nil
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

// BoardCmd prints the board config.
var BoardCmd = ishell.Cmd{
	Name:    "board",
	Aliases: []string{"b"},
	Help:    "show board config",
	Func: func(c *ishell.Context) {
		conf := ShellFrom(c).Config
		out, err := conf.YAML()
		if err != nil {
			c.Err(err)
			return
		}
		Output(c, conf, string(out))
	},
}

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	defer glog.Flush()
	s := New(board.NewConfig().MustValidate())
	if err := s.OpenReports(); err != nil {
		log.Fatalf("open report sink %q failed: %v", s.Config.ReportURL, err)
	}
	defer s.Close()
	s.Run(flag.Args()...)
}

// ArgInt parses the optional integer argument at index n.
func ArgInt(c *ishell.Context, n, def int) (int, error) {
	if len(c.Args) <= n {
		return def, nil
	}
	var val int
	if _, err := fmt.Sscanf(c.Args[n], "%d", &val); err != nil {
		return 0, fmt.Errorf("invalid argument %q: %v", c.Args[n], err)
	}
	return val, nil
}
