// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package ast

// Loc is a half-open byte range into the source of a [File].
type Loc struct {
	Begin, End uint32
}

// Join returns the smallest location covering both l and o.
func (l Loc) Join(o Loc) Loc {
	return Loc{Begin: min(l.Begin, o.Begin), End: max(l.End, o.End)}
}

// Expr is a node of the tree. The set of implementations is closed.
type Expr interface {
	// Location returns the source range of the node.
	Location() Loc
	exprNode()
}

// File is a parsed source file.
type File struct {
	Path      string
	Source    []byte
	Root      *Seq // top-level statements
	Generated bool // file carries a generated-code marker
}

type (
	// EmptyTree is an absent expression, e.g. the body of an empty method.
	EmptyTree struct {
		Loc Loc
	}

	// Unknown is a construct the tree does not model; Text is the verbatim source.
	Unknown struct {
		Loc  Loc
		Kind string // grammar node type
		Text string
	}

	// Literal is a symbol, string, number, nil or boolean literal.
	Literal struct {
		Loc   Loc
		Kind  LiteralKind
		Value string // symbol/string contents, numeric source text
	}

	// ConstLit is a constant reference. A nil Scope means lexical lookup,
	// a *Cbase scope means a root reference (::Name).
	ConstLit struct {
		Loc   Loc
		Scope Expr
		Name  string
	}

	// Cbase is the root constant scope.
	Cbase struct {
		Loc Loc
	}

	// Local is a local variable or bare identifier.
	Local struct {
		Loc  Loc
		Name string
	}

	// Ident is an instance, class or global variable.
	Ident struct {
		Loc  Loc
		Kind IdentKind
		Name string // without sigil
	}

	// Self is the self keyword.
	Self struct {
		Loc Loc
	}

	// Assign is an assignment statement.
	Assign struct {
		Loc Loc
		Lhs Expr
		Rhs Expr
	}

	// Send is a method call. A nil Recv is an implicit-self call.
	Send struct {
		Loc   Loc
		Recv  Expr
		Fun   string
		Args  []Expr
		Block *Block
	}

	// Block is a literal block attached to a [Send].
	Block struct {
		Loc    Loc
		Params []Expr
		Body   Expr
	}

	// Hash is a hash literal, including trailing keyword arguments of a call.
	Hash struct {
		Loc    Loc
		Keys   []Expr
		Values []Expr
	}

	// Array is an array literal.
	Array struct {
		Loc   Loc
		Elems []Expr
	}

	// ClassDef is a class or module definition.
	ClassDef struct {
		Loc       Loc
		Kind      ClassKind
		Name      Expr
		Ancestors []Expr
		Body      []Expr
	}

	// MethodDef is a method definition.
	MethodDef struct {
		Loc        Loc
		Name       string
		Args       []Expr
		Body       Expr
		Flags      MethodFlags
		Visibility Visibility
	}

	// KeywordArg is a mandatory keyword parameter.
	KeywordArg struct {
		Loc  Loc
		Name string
	}

	// OptionalArg wraps a positional ([*Local]) or keyword ([*KeywordArg]) parameter with a default.
	OptionalArg struct {
		Loc     Loc
		Arg     Expr
		Default Expr
	}

	// RestArg is a splat parameter.
	RestArg struct {
		Loc  Loc
		Name string
	}

	// BlockArg is a block parameter.
	BlockArg struct {
		Loc  Loc
		Name string
	}

	// Seq is a sequence of statements.
	Seq struct {
		Loc   Loc
		Stats []Expr
	}
)

// LiteralKind distinguishes [Literal] values.
type LiteralKind uint8

//go:generate go tool stringer -type LiteralKind,IdentKind,ClassKind,Visibility -trimprefix Lit -output kinds_string.go
const (
	LitNil LiteralKind = iota
	LitTrue
	LitFalse
	LitSymbol
	LitString
	LitInteger
	LitFloat
)

// IdentKind distinguishes [Ident] variables.
type IdentKind uint8

const (
	InstanceVar IdentKind = iota
	ClassVar
	GlobalVar
)

// ClassKind distinguishes classes from modules.
type ClassKind uint8

const (
	Class ClassKind = iota
	Module
)

// Visibility is the declared visibility of a method.
type Visibility uint8

const (
	Public Visibility = iota
	Private
	Protected
)

// MethodFlags are properties of a [MethodDef].
type MethodFlags uint8

const (
	// MethodSelf marks a singleton method (def self.m).
	MethodSelf MethodFlags = 1 << iota

	// MethodSynthesized marks a method generated by the rewriter.
	MethodSynthesized
)

// IsSelf reports whether the method is a singleton method.
func (m *MethodDef) IsSelf() bool { return m.Flags&MethodSelf != 0 }

// IsSynthesized reports whether the method was generated by the rewriter.
func (m *MethodDef) IsSynthesized() bool { return m.Flags&MethodSynthesized != 0 }

func (n *EmptyTree) Location() Loc   { return n.Loc }
func (n *Unknown) Location() Loc     { return n.Loc }
func (n *Literal) Location() Loc     { return n.Loc }
func (n *ConstLit) Location() Loc    { return n.Loc }
func (n *Cbase) Location() Loc       { return n.Loc }
func (n *Local) Location() Loc       { return n.Loc }
func (n *Ident) Location() Loc       { return n.Loc }
func (n *Self) Location() Loc        { return n.Loc }
func (n *Assign) Location() Loc      { return n.Loc }
func (n *Send) Location() Loc        { return n.Loc }
func (n *Block) Location() Loc       { return n.Loc }
func (n *Hash) Location() Loc        { return n.Loc }
func (n *Array) Location() Loc       { return n.Loc }
func (n *ClassDef) Location() Loc    { return n.Loc }
func (n *MethodDef) Location() Loc   { return n.Loc }
func (n *KeywordArg) Location() Loc  { return n.Loc }
func (n *OptionalArg) Location() Loc { return n.Loc }
func (n *RestArg) Location() Loc     { return n.Loc }
func (n *BlockArg) Location() Loc    { return n.Loc }
func (n *Seq) Location() Loc         { return n.Loc }

func (*EmptyTree) exprNode()   {}
func (*Unknown) exprNode()     {}
func (*Literal) exprNode()     {}
func (*ConstLit) exprNode()    {}
func (*Cbase) exprNode()       {}
func (*Local) exprNode()       {}
func (*Ident) exprNode()       {}
func (*Self) exprNode()        {}
func (*Assign) exprNode()      {}
func (*Send) exprNode()        {}
func (*Block) exprNode()       {}
func (*Hash) exprNode()        {}
func (*Array) exprNode()       {}
func (*ClassDef) exprNode()    {}
func (*MethodDef) exprNode()   {}
func (*KeywordArg) exprNode()  {}
func (*OptionalArg) exprNode() {}
func (*RestArg) exprNode()     {}
func (*BlockArg) exprNode()    {}
func (*Seq) exprNode()         {}
