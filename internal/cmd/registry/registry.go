// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

// Package registry holds the command tree. Each node owns a handler, its
// flag sets and its help text, and may hold a registry of subcommands that is
// created the first time a subcommand is registered.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alburnum/maas/internal/cmd/base"
	"github.com/ryanuber/columnize"
)

// Factory creates the handler of a command. It is called once, when the
// command is registered.
type Factory func() base.Handler

// Registry is one level of the command tree.
type Registry struct {
	parent *Node
	nodes  map[string]*Node
}

// New returns an empty root registry.
func New() *Registry {
	return &Registry{nodes: make(map[string]*Node)}
}

// Register adds the command built by factory to r. Registration performs no
// I/O. It panics when factory returns nil or the name is already taken at
// this level.
func (r *Registry) Register(factory Factory, opt ...Option) *Node {
	opts := getOpts(opt...)
	h := factory()
	if h == nil {
		panic("command factory returned a nil handler")
	}
	name := opts.withName
	if name == "" {
		name = NameOf(h)
	}
	if _, ok := r.nodes[name]; ok {
		panic(fmt.Sprintf("command %q registered twice", strings.Join(append(r.path(), name), " ")))
	}

	synopsis, help := ParseDoc(h.Doc())
	n := &Node{
		name:     name,
		synopsis: synopsis,
		help:     help,
		hidden:   opts.withHidden,
		flags:    base.NewFlagSets(),
		handler:  h,
		parent:   r.parent,
	}
	if d, ok := h.(base.FlagDeclarer); ok {
		d.Flags(n.flags)
	}
	r.nodes[name] = n
	return n
}

// Lookup returns the command registered as name at this level.
func (r *Registry) Lookup(name string) (*Node, bool) {
	if r == nil {
		return nil, false
	}
	n, ok := r.nodes[name]
	return n, ok
}

// Nodes returns the commands at this level that are not hidden, sorted by
// name.
func (r *Registry) Nodes() []*Node {
	if r == nil {
		return nil
	}
	ret := make([]*Node, 0, len(r.nodes))
	for _, n := range r.nodes {
		if !n.hidden {
			ret = append(ret, n)
		}
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].name < ret[j].name })
	return ret
}

// Names returns the names of the commands Nodes returns.
func (r *Registry) Names() []string {
	nodes := r.Nodes()
	ret := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ret = append(ret, n.name)
	}
	return ret
}

// Resolve walks args down the tree as far as they name commands. It returns
// the deepest command found, or nil, and the arguments left over.
func (r *Registry) Resolve(args []string) (*Node, []string) {
	var found *Node
	cur := r
	for len(args) > 0 {
		n, ok := cur.Lookup(args[0])
		if !ok {
			break
		}
		found, cur, args = n, n.children, args[1:]
	}
	return found, args
}

func (r *Registry) path() []string {
	if r.parent == nil {
		return nil
	}
	return r.parent.Path()
}

// Node is one command in the tree.
type Node struct {
	name     string
	synopsis string
	help     string
	hidden   bool
	flags    *base.FlagSets
	handler  base.Handler
	parent   *Node
	children *Registry
}

// Register adds a subcommand below n, creating n's child registry on first
// use.
func (n *Node) Register(factory Factory, opt ...Option) *Node {
	if n.children == nil {
		n.children = &Registry{parent: n, nodes: make(map[string]*Node)}
	}
	return n.children.Register(factory, opt...)
}

// Name returns the command's name at its level.
func (n *Node) Name() string { return n.name }

// Synopsis returns the one line summary of the command.
func (n *Node) Synopsis() string { return n.synopsis }

// HelpBody returns the command's help without the synopsis.
func (n *Node) HelpBody() string { return n.help }

// Hidden reports whether the command is left out of listings.
func (n *Node) Hidden() bool { return n.hidden }

// Flags returns the flag sets the command's arguments are parsed with.
func (n *Node) Flags() *base.FlagSets { return n.flags }

// Handler returns the command's handler.
func (n *Node) Handler() base.Handler { return n.handler }

// Parent returns the node n was registered below, or nil at the top level.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the subcommands of n. It is nil until a subcommand is
// registered.
func (n *Node) Children() *Registry { return n.children }

// Path returns the names from the top level down to n.
func (n *Node) Path() []string {
	var path []string
	for cur := n; cur != nil; cur = cur.parent {
		path = append([]string{cur.name}, path...)
	}
	return path
}

// Usage returns the usage line of the command, for example
// "Usage: maas logout <profile-name>".
func (n *Node) Usage(prog string) string {
	parts := append([]string{"Usage:", prog}, n.Path()...)
	if n.children != nil && len(n.children.nodes) > 0 {
		parts = append(parts, "[<subcommand>]")
	}
	if s := n.flags.Synopsis(); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

// Help returns the full help of the command: the usage line, the synopsis
// and help body wrapped to the terminal, any subcommands and the arguments
// and options.
func (n *Node) Help(prog string) string {
	sections := []string{n.Usage(prog)}
	if text := base.WrapParagraphs(n.synopsis + "\n\n" + n.help); text != "" {
		sections = append(sections, text)
	}
	if subs := n.children.Nodes(); len(subs) > 0 {
		list := make([]string, 0, len(subs))
		for _, s := range subs {
			list = append(list, s.name+"|"+s.synopsis)
		}
		sections = append(sections, "Subcommands:\n\n"+base.ColumnOutput(list, &columnize.Config{Prefix: "    "}))
	}
	if flags := n.flags.Help(); flags != "" {
		sections = append(sections, flags)
	}
	return strings.Join(sections, "\n\n")
}
