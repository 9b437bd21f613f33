package utils

import (
	"flag"
	"sort"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/1llum1n4t1s/VStoVSC/internal/base"
)

var LogCommand = base.NewLogCategory("Command")

/***************************************
 * Command flags
 ***************************************/

type CommandFlagsVisitor interface {
	Bool(name, usage string, value *bool)
	Int(name, usage string, value *int)
	String(name, usage string, value *string)
	Variable(name, usage string, value flag.Value)
}

type CommandParsableFlags interface {
	Flags(cfv CommandFlagsVisitor)
}

type flagSetVisitor struct {
	inner *flag.FlagSet
}

func (x flagSetVisitor) Bool(name, usage string, value *bool) {
	x.inner.BoolVar(value, name, *value, usage)
}
func (x flagSetVisitor) Int(name, usage string, value *int) {
	x.inner.IntVar(value, name, *value, usage)
}
func (x flagSetVisitor) String(name, usage string, value *string) {
	x.inner.StringVar(value, name, *value, usage)
}
func (x flagSetVisitor) Variable(name, usage string, value flag.Value) {
	x.inner.Var(value, name, usage)
}

var gGlobalParsableFlags []CommandParsableFlags

// NewGlobalCommandParsableFlags registers flags shared by every command and
// returns an accessor for the parsed values.
func NewGlobalCommandParsableFlags[T CommandParsableFlags](description string, value T) func() T {
	gGlobalParsableFlags = append(gGlobalParsableFlags, value)
	return func() T { return value }
}

/***************************************
 * Commands
 ***************************************/

type CommandContext interface {
	Name() string
	Args() base.StringSet
}

type commandArgument struct {
	Name        string
	Description string
	Value       flag.Value
	Optional    bool
}

type commandItem struct {
	Category    string
	Name        string
	Description string

	arguments []commandArgument
	parsables []CommandParsableFlags
	run       func(CommandContext) error

	consumed base.StringSet
}

type commandContext struct {
	item *commandItem
}

func (x commandContext) Name() string        { return x.item.Name }
func (x commandContext) Args() base.StringSet { return x.item.consumed }

type CommandOptionFunc func(*commandItem)

func OptionCommandRun(run func(CommandContext) error) CommandOptionFunc {
	return func(ci *commandItem) {
		ci.run = run
	}
}
func OptionCommandArg(name, description string, value flag.Value) CommandOptionFunc {
	return func(ci *commandItem) {
		ci.arguments = append(ci.arguments, commandArgument{
			Name:        name,
			Description: description,
			Value:       value,
		})
	}
}
func OptionCommandOptionalArg(name, description string, value flag.Value) CommandOptionFunc {
	return func(ci *commandItem) {
		ci.arguments = append(ci.arguments, commandArgument{
			Name:        name,
			Description: description,
			Value:       value,
			Optional:    true,
		})
	}
}
func OptionCommandParsableFlags(name, description string, value CommandParsableFlags) CommandOptionFunc {
	return func(ci *commandItem) {
		ci.parsables = append(ci.parsables, value)
	}
}

var gCommands = map[string]*commandItem{}

func NewCommand(category, name, description string, options ...CommandOptionFunc) *commandItem {
	result := &commandItem{
		Category:    category,
		Name:        name,
		Description: description,
	}
	for _, opt := range options {
		opt(result)
	}
	gCommands[strings.ToLower(name)] = result
	return result
}

func AllCommands() (result []*commandItem) {
	keys := maps.Keys(gCommands)
	sort.Strings(keys)
	for _, it := range keys {
		result = append(result, gCommands[it])
	}
	return
}

func FindCommand(name string) *commandItem {
	return gCommands[strings.ToLower(name)]
}

/***************************************
 * Command line
 ***************************************/

func (x *commandItem) Parse(args []string) error {
	fls := flag.NewFlagSet(x.Name, flag.ContinueOnError)
	visitor := flagSetVisitor{inner: fls}

	for _, it := range gGlobalParsableFlags {
		it.Flags(visitor)
	}
	for _, it := range x.parsables {
		it.Flags(visitor)
	}

	if err := fls.Parse(args); err != nil {
		return err
	}

	x.consumed = base.NewStringSet(fls.Args()...)

	for i, it := range x.arguments {
		if i >= len(x.consumed) {
			if it.Optional {
				break
			}
			return base.MakeError("%s: missing <%s> argument (%s)", x.Name, it.Name, it.Description)
		}
		if err := it.Value.Set(x.consumed[i]); err != nil {
			return base.MakeError("%s: invalid <%s> argument: %v", x.Name, it.Name, err)
		}
	}
	return nil
}

func (x *commandItem) Invoke() error {
	if x.run == nil {
		return nil
	}
	return x.run(commandContext{item: x})
}

// RunCommandLine dispatches os.Args-style arguments to a registered command.
func RunCommandLine(args []string) error {
	if len(args) == 0 {
		PrintCommandHelp()
		return nil
	}

	name := args[0]
	command := FindCommand(name)
	if command == nil {
		PrintCommandHelp()
		return base.MakeError("unknown command %q", name)
	}

	if err := command.Parse(args[1:]); err != nil {
		return err
	}
	GetLogFlags().Apply()

	base.LogDebug(LogCommand, "run command %q with %v", command.Name, command.consumed)
	return command.Invoke()
}

func PrintCommandHelp() {
	category := ""
	for _, it := range AllCommands() {
		if it.Category != category {
			category = it.Category
			base.LogForwardln("[" + category + "]")
		}
		base.LogForwardln("  " + it.Name + strings.Repeat(" ", max(1, 12-len(it.Name))) + it.Description)
	}
}
