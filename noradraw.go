//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/timburks/noradraw/pkg/commander"
	"github.com/timburks/noradraw/pkg/editor"
	"github.com/timburks/noradraw/pkg/screen"
	"github.com/timburks/noradraw/pkg/store"
	nora "github.com/timburks/noradraw/pkg/types"
)

type options struct {
	dir     string // directory of drawing files
	db      string // sqlite database, used instead of dir when set
	logfile string
	script  string
}

func parseArgs(args []string, env func(string) string) (*options, bool) {
	home := env("HOME")
	o := &options{
		dir:     filepath.Join(home, "drawings"),
		logfile: filepath.Join(home, ".noradrawlog"),
	}
	if dir := env("NORADRAW_DIR"); dir != "" {
		o.dir = dir
	}
	for i := 1; i < len(args); i++ {
		argi := args[i]
		var target *string
		switch argi {
		case "--dir":
			target = &o.dir
		case "--db":
			target = &o.db
		case "--log":
			target = &o.logfile
		case "--eval": // eval program
			target = &o.script
		default:
			log.Printf("Unknown argument %s", argi)
			return nil, false
		}
		i++
		if i >= len(args) {
			log.Printf("No value specified for %s option", argi)
			return nil, false
		}
		*target = args[i]
	}
	return o, true
}

func openStore(o *options) (store.Store, error) {
	if o.db != "" {
		return store.OpenSQLite(o.db)
	}
	return store.NewDirStore(o.dir)
}

// run processes events until the commander quits or ctx is done.
func run(ctx context.Context, c *commander.Commander, e *editor.Editor, next func() *nora.Event) {
	for c.IsRunning() && ctx.Err() == nil {
		e.Render()
		err := c.ProcessEvent(next())
		if err != nil {
			log.Output(1, err.Error())
		}
	}
}

func main() {
	o, ok := parseArgs(os.Args, os.Getenv)
	if !ok {
		os.Exit(2)
	}

	s, err := openStore(o)
	if err != nil {
		log.Output(1, err.Error())
		os.Exit(1)
	}
	gateway := store.NewGateway(s, rand.New(rand.NewSource(time.Now().UnixNano())))

	// Signals end the session; a replay in progress finishes at once.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()

	if o.script != "" {
		// Run a noradraw script without a terminal and exit.
		e := editor.NewEditor(screen.NewHeadless(nora.Size{Rows: 24, Cols: 80}), gateway)
		defer e.Close()
		c := commander.NewCommander(ctx, e)
		if err := c.ParseEvalFile(o.script); err != nil {
			log.Output(1, err.Error())
			os.Exit(1)
		}
		return
	}

	// Open a log file.
	f, err := os.OpenFile(o.logfile, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	log.SetOutput(f)
	defer f.Close()

	// Create a screen to manage display.
	display, err := screen.NewScreen()
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	defer display.Close()

	// The editor holds the drawing.
	e := editor.NewEditor(display, gateway)
	defer e.Close()

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(ctx, e)

	go func() {
		<-ctx.Done()
		display.Interrupt()
	}()

	// Run the main event loop.
	run(ctx, c, e, display.GetNextEvent)
}
