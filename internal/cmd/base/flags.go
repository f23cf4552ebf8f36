// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package base

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/posener/complete"
	"github.com/spf13/pflag"
)

// reRemoveWhitespace is a regular expression for stripping whitespace from
// a string.
var reRemoveWhitespace = regexp.MustCompile(`[\s]+`)

// FlagSets is a group of flag sets plus the positional arguments of one
// command.
type FlagSets struct {
	flagSets    []*FlagSet
	mainSet     *pflag.FlagSet
	positionals []*PositionalVar
	completions complete.Flags
}

// NewFlagSets creates a new flag sets.
func NewFlagSets() *FlagSets {
	mainSet := pflag.NewFlagSet("", pflag.ContinueOnError)

	// Errors and usage are controlled by the CLI.
	mainSet.Usage = func() {}
	mainSet.SetOutput(io.Discard)
	mainSet.SetInterspersed(true)
	mainSet.SortFlags = false

	return &FlagSets{
		flagSets:    make([]*FlagSet, 0, 2),
		mainSet:     mainSet,
		completions: complete.Flags{},
	}
}

// NewFlagSet creates a new flag set from the given flag sets.
func (f *FlagSets) NewFlagSet(name string) *FlagSet {
	flagSet := NewFlagSet(name)
	flagSet.mainSet = f.mainSet
	flagSet.completions = f.completions
	f.flagSets = append(f.flagSets, flagSet)
	return flagSet
}

// PositionalVar declares a positional argument.
type PositionalVar struct {
	Name       string
	Usage      string
	Optional   bool
	Target     *string
	Completion complete.Predictor

	set bool
}

// Positional declares the next positional argument. Required arguments must
// be declared before optional ones.
func (f *FlagSets) Positional(i *PositionalVar) {
	if i.Target == nil {
		i.Target = new(string)
	}
	for _, p := range f.positionals {
		if p.Optional && !i.Optional {
			panic(fmt.Sprintf("required argument %q declared after optional argument %q", i.Name, p.Name))
		}
		if p.Name == i.Name {
			panic(fmt.Sprintf("argument %q declared twice", i.Name))
		}
	}
	f.positionals = append(f.positionals, i)
}

// Positionals returns the declared positional arguments in order.
func (f *FlagSets) Positionals() []*PositionalVar {
	return f.positionals
}

// Completions returns the completions for this flag set.
func (f *FlagSets) Completions() complete.Flags {
	return f.completions
}

// ArgsCompletion predicts the first positional argument, if it declares a
// completion.
func (f *FlagSets) ArgsCompletion() complete.Predictor {
	if len(f.positionals) == 0 || f.positionals[0].Completion == nil {
		return complete.PredictNothing
	}
	return f.positionals[0].Completion
}

// Parse parses the given args, which may mix flags and positional
// arguments, and binds the positional arguments to their targets.
func (f *FlagSets) Parse(args []string) error {
	if err := f.mainSet.Parse(args); err != nil {
		return err
	}
	rest := f.mainSet.Args()
	var missing []string
	for i, p := range f.positionals {
		if i >= len(rest) {
			if !p.Optional {
				missing = append(missing, p.Name)
			}
			continue
		}
		*p.Target = rest[i]
		p.set = true
	}
	if len(missing) > 0 {
		return fmt.Errorf("the following arguments are required: %s", strings.Join(missing, ", "))
	}
	if len(rest) > len(f.positionals) {
		return fmt.Errorf("unrecognized arguments: %s", strings.Join(rest[len(f.positionals):], " "))
	}
	return nil
}

// Parsed reports whether the command-line flags have been parsed.
func (f *FlagSets) Parsed() bool {
	return f.mainSet.Parsed()
}

// Args returns the remaining args after parsing.
func (f *FlagSets) Args() []string {
	return f.mainSet.Args()
}

// Changed reports whether the named flag was given on the command line.
func (f *FlagSets) Changed(name string) bool {
	return f.mainSet.Changed(name)
}

// Lookup returns the named flag, or nil.
func (f *FlagSets) Lookup(name string) *pflag.Flag {
	return f.mainSet.Lookup(name)
}

// Synopsis returns the argument part of a usage line, for example
// "[options] <profile-name> [credentials]".
func (f *FlagSets) Synopsis() string {
	var parts []string
	hasFlags := false
	f.mainSet.VisitAll(func(fl *pflag.Flag) {
		if !fl.Hidden {
			hasFlags = true
		}
	})
	if hasFlags {
		parts = append(parts, "[options]")
	}
	for _, p := range f.positionals {
		if p.Optional {
			parts = append(parts, "["+p.Name+"]")
			continue
		}
		parts = append(parts, "<"+p.Name+">")
	}
	return strings.Join(parts, " ")
}

// Help builds custom help for this command, grouping by flag set.
func (fs *FlagSets) Help() string {
	var out bytes.Buffer

	if len(fs.positionals) > 0 {
		printFlagTitle(&out, "Arguments:")
		for _, p := range fs.positionals {
			fmt.Fprintf(&out, "  %s\n", p.Name)
			if p.Usage != "" {
				usage := reRemoveWhitespace.ReplaceAllString(p.Usage, " ")
				fmt.Fprintf(&out, "%s\n", WrapAtLengthWithPadding(usage, 6))
			}
			fmt.Fprintln(&out)
		}
	}

	for _, set := range fs.flagSets {
		if !set.hasVisible() {
			continue
		}
		printFlagTitle(&out, set.name+":")
		set.VisitAll(func(f *pflag.Flag) {
			printFlagDetail(&out, f)
		})
	}

	return strings.TrimRight(out.String(), "\n")
}

// FlagSet is a grouped wrapper around a real flag set and a grouped flag set.
type FlagSet struct {
	name        string
	flagSet     *pflag.FlagSet
	mainSet     *pflag.FlagSet
	completions complete.Flags
}

// NewFlagSet creates a new flag set.
func NewFlagSet(name string) *FlagSet {
	return &FlagSet{
		name:    name,
		flagSet: pflag.NewFlagSet(name, pflag.ContinueOnError),
	}
}

// Name returns the name of this flag set.
func (f *FlagSet) Name() string {
	return f.name
}

func (f *FlagSet) Visit(fn func(*pflag.Flag)) {
	f.flagSet.Visit(fn)
}

func (f *FlagSet) VisitAll(fn func(*pflag.Flag)) {
	f.flagSet.VisitAll(fn)
}

func (f *FlagSet) hasVisible() bool {
	visible := false
	f.flagSet.VisitAll(func(fl *pflag.Flag) {
		if !fl.Hidden {
			visible = true
		}
	})
	return visible
}

// add registers a flag created on the group set with the main set too, so
// that parsing and help both see it.
func (f *FlagSet) add(name, shorthand string, hidden bool, completion complete.Predictor) {
	fl := f.flagSet.Lookup(name)
	fl.Hidden = hidden
	f.mainSet.AddFlag(fl)
	if completion == nil {
		completion = complete.PredictNothing
	}
	if hidden {
		return
	}
	f.completions["--"+name] = completion
	if shorthand != "" {
		f.completions["-"+shorthand] = completion
	}
}

// StringVar declares a string flag.
type StringVar struct {
	Name       string
	Shorthand  string
	Usage      string
	Default    string
	Hidden     bool
	EnvVar     string
	Target     *string
	Completion complete.Predictor
}

func (f *FlagSet) StringVar(i *StringVar) {
	initial := i.Default
	if v, exist := os.LookupEnv(i.EnvVar); i.EnvVar != "" && exist {
		initial = v
	}
	f.flagSet.StringVarP(i.Target, i.Name, i.Shorthand, initial, i.Usage)
	f.add(i.Name, i.Shorthand, i.Hidden, i.Completion)
}

// BoolVar declares a boolean flag.
type BoolVar struct {
	Name      string
	Shorthand string
	Usage     string
	Default   bool
	Hidden    bool
	EnvVar    string
	Target    *bool
}

func (f *FlagSet) BoolVar(i *BoolVar) {
	initial := i.Default
	if v, exist := os.LookupEnv(i.EnvVar); i.EnvVar != "" && exist {
		if b, err := strconv.ParseBool(v); err == nil {
			initial = b
		}
	}
	f.flagSet.BoolVarP(i.Target, i.Name, i.Shorthand, initial, i.Usage)
	f.add(i.Name, i.Shorthand, i.Hidden, complete.PredictNothing)
}

// printFlagTitle prints a consistently-formatted title to the given writer.
func printFlagTitle(w io.Writer, s string) {
	fmt.Fprintf(w, "%s\n\n", s)
}

// printFlagDetail prints a single flag to the given writer.
func printFlagDetail(w io.Writer, f *pflag.Flag) {
	// Hidden flags have no help output at all.
	if f.Hidden {
		return
	}

	name := "--" + f.Name
	if f.Shorthand != "" {
		name = fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	}
	if f.Value.Type() != "bool" {
		name = fmt.Sprintf("%s=<%s>", name, f.Value.Type())
	}
	fmt.Fprintf(w, "  %s\n", name)

	usage := reRemoveWhitespace.ReplaceAllString(f.Usage, " ")
	indented := WrapAtLengthWithPadding(usage, 6)
	fmt.Fprintf(w, "%s\n\n", indented)
}
