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

package commander

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/steelseries/golisp"

	nora "github.com/timburks/noradraw/pkg/types"
)

type primitive func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error)

// bindPrimitives makes the editor commands callable from lisp.
// The global environment is shared, so the most recent commander wins.
func (c *Commander) bindPrimitives() {
	e := c.editor
	move := func(direction int) primitive {
		return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			return point(e.MoveCursor(direction)), nil
		}
	}
	golisp.MakePrimitiveFunction("up", "0", move(nora.MoveUp))
	golisp.MakePrimitiveFunction("down", "0", move(nora.MoveDown))
	golisp.MakePrimitiveFunction("left", "0", move(nora.MoveLeft))
	golisp.MakePrimitiveFunction("right", "0", move(nora.MoveRight))
	golisp.MakePrimitiveFunction("move", "2", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		dy, err := integerArg(golisp.Car(args), "move")
		if err != nil {
			return nil, err
		}
		dx, err := integerArg(golisp.Cadr(args), "move")
		if err != nil {
			return nil, err
		}
		return point(e.MoveBy(dy, dx)), nil
	})
	golisp.MakePrimitiveFunction("cursor", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return point(e.GetCursor()), nil
	})
	golisp.MakePrimitiveFunction("point-count", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.IntegerWithValue(int64(e.PointCount())), nil
	})
	golisp.MakePrimitiveFunction("draw", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.BooleanWithValue(e.Draw()), nil
	})
	golisp.MakePrimitiveFunction("erase", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		e.Erase()
		return golisp.IntegerWithValue(int64(e.PointCount())), nil
	})
	golisp.MakePrimitiveFunction("toggle-pen", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.BooleanWithValue(e.TogglePen()), nil
	})
	golisp.MakePrimitiveFunction("pen-tip", "1", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		tip, err := tipArg(golisp.Car(args))
		if err != nil {
			return nil, err
		}
		e.SetTip(tip)
		return golisp.StringWithValue(tip), nil
	})
	golisp.MakePrimitiveFunction("color", "1", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		pair, err := integerArg(golisp.Car(args), "color")
		if err != nil {
			return nil, err
		}
		return golisp.IntegerWithValue(int64(e.SetColor(pair))), nil
	})
	golisp.MakePrimitiveFunction("next-color", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.IntegerWithValue(int64(e.NextColor())), nil
	})
	golisp.MakePrimitiveFunction("new-drawing", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		e.NewDrawing()
		return golisp.StringWithValue("new drawing"), nil
	})
	golisp.MakePrimitiveFunction("save-drawing", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		slot, err := e.Save()
		if err != nil {
			return nil, err
		}
		return golisp.StringWithValue(string(slot)), nil
	})
	golisp.MakePrimitiveFunction("load-drawing", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if err := e.Load(c.ctx); err != nil {
			return nil, err
		}
		return golisp.StringWithValue(string(e.GetSlot())), nil
	})
	golisp.MakePrimitiveFunction("delete-drawing", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		slot := e.GetSlot()
		if err := e.Delete(); err != nil {
			return nil, err
		}
		return golisp.StringWithValue(string(slot)), nil
	})
	golisp.MakePrimitiveFunction("replay", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if err := e.TakeTurn(c.ctx); err != nil {
			return nil, err
		}
		return golisp.IntegerWithValue(int64(e.PointCount())), nil
	})
	golisp.MakePrimitiveFunction("recenter", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		e.Recenter()
		return point(e.GetCorner()), nil
	})
	golisp.MakePrimitiveFunction("show-help", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		e.Help()
		return golisp.StringWithValue("help"), nil
	})
	golisp.MakePrimitiveFunction("quit", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		c.mode = nora.ModeQuit
		return golisp.StringWithValue("quit"), nil
	})
}

func point(p nora.Point) *golisp.Data {
	return golisp.InternalMakeList(golisp.IntegerWithValue(int64(p.Row)), golisp.IntegerWithValue(int64(p.Col)))
}

func integerArg(d *golisp.Data, name string) (int, error) {
	switch {
	case golisp.IntegerP(d):
		return int(golisp.IntegerValue(d)), nil
	case golisp.FloatP(d):
		return int(golisp.FloatValue(d)), nil
	}
	return 0, fmt.Errorf("%s requires integer arguments, got %s", name, golisp.String(d))
}

// A pen tip is a one character string or a character code.
func tipArg(d *golisp.Data) (string, error) {
	if golisp.StringP(d) {
		tip := golisp.StringValue(d)
		if len([]rune(tip)) != 1 {
			return "", fmt.Errorf("pen-tip requires a single character, got %q", tip)
		}
		return tip, nil
	}
	code, err := integerArg(d, "pen-tip")
	if err != nil {
		return "", err
	}
	if code < ' ' {
		return "", errors.New("pen-tip requires a printable character")
	}
	return string(rune(code)), nil
}

func (c *Commander) parseEval(command string) (string, error) {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %s %+v", command, err)
		return err.Error(), err
	}
	return golisp.String(value), nil
}

// Eval evaluates a single expression and returns its printed value.
func (c *Commander) Eval(command string) (string, error) {
	result, err := c.parseEval(command)
	c.message = result
	return result, err
}

// ParseEvalFile evaluates the expressions in a script. Lines starting
// with ';' are comments. Evaluation stops at the first error or quit.
func (c *Commander) ParseEvalFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	var expr strings.Builder
	depth := 0
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, ";") {
			continue
		}
		expr.WriteString(text)
		expr.WriteString(" ")
		depth += strings.Count(text, "(") - strings.Count(text, ")")
		if depth > 0 {
			continue
		}
		if _, err := c.Eval(expr.String()); err != nil {
			return fmt.Errorf("%s:%d: %w", filename, line, err)
		}
		expr.Reset()
		depth = 0
		if !c.IsRunning() {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(expr.String()) != "" {
		return fmt.Errorf("%s: unbalanced expression at end of file", filename)
	}
	return nil
}
