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

// Builders for synthesized nodes. All builders set the given location on every node they create.

// Empty returns an [EmptyTree].
func Empty(loc Loc) *EmptyTree { return &EmptyTree{Loc: loc} }

// Nil returns a nil literal.
func Nil(loc Loc) *Literal { return &Literal{Loc: loc, Kind: LitNil} }

// True returns a true literal.
func True(loc Loc) *Literal { return &Literal{Loc: loc, Kind: LitTrue} }

// Symbol returns a symbol literal.
func Symbol(loc Loc, name string) *Literal { return &Literal{Loc: loc, Kind: LitSymbol, Value: name} }

// String returns a string literal.
func String(loc Loc, value string) *Literal { return &Literal{Loc: loc, Kind: LitString, Value: value} }

// Const returns a constant reference in the given scope.
func Const(loc Loc, scope Expr, name string) *ConstLit {
	return &ConstLit{Loc: loc, Scope: scope, Name: name}
}

// ConstPath builds a nested constant reference, e.g. ConstPath(loc, false, "T", "Struct") for T::Struct.
// With root set the path starts at the root scope (::T::Struct).
func ConstPath(loc Loc, root bool, names ...string) *ConstLit {
	var scope Expr
	if root {
		scope = &Cbase{Loc: loc}
	}

	var c *ConstLit
	for _, name := range names {
		c = Const(loc, scope, name)
		scope = c
	}

	return c
}

// Call returns a method call.
func Call(loc Loc, recv Expr, fun string, args ...Expr) *Send {
	return &Send{Loc: loc, Recv: recv, Fun: fun, Args: args}
}

// NewLocal returns a local variable reference.
func NewLocal(loc Loc, name string) *Local { return &Local{Loc: loc, Name: name} }

// Ivar returns an instance variable reference.
func Ivar(loc Loc, name string) *Ident { return &Ident{Loc: loc, Kind: InstanceVar, Name: name} }

// NewHash returns a hash literal.
func NewHash(loc Loc, keys, values []Expr) *Hash { return &Hash{Loc: loc, Keys: keys, Values: values} }

// Keyword returns a mandatory keyword parameter.
func Keyword(loc Loc, name string) *KeywordArg { return &KeywordArg{Loc: loc, Name: name} }

// Optional wraps a parameter with a default value.
func Optional(loc Loc, arg, def Expr) *OptionalArg { return &OptionalArg{Loc: loc, Arg: arg, Default: def} }

// T returns the T constant.
func T(loc Loc) *ConstLit { return Const(loc, nil, "T") }

// Unsafe returns T.unsafe(e), a value that escapes type obligations.
func Unsafe(loc Loc, e Expr) *Send { return Call(loc, T(loc), "unsafe", e) }

// Let returns T.let(e, typ).
func Let(loc Loc, e, typ Expr) *Send { return Call(loc, T(loc), "let", e, typ) }

// Nilable returns T.nilable(typ).
func Nilable(loc Loc, typ Expr) *Send { return Call(loc, T(loc), "nilable", typ) }

// Untyped returns T.untyped.
func Untyped(loc Loc) *Send { return Call(loc, T(loc), "untyped") }

// ArrayOf returns T::Array[typ].
func ArrayOf(loc Loc, typ Expr) *Send {
	return Call(loc, ConstPath(loc, false, "T", "Array"), "[]", typ)
}

// Sig returns sig {params(...).returns(ret)}. A nil or empty params hash omits the params call.
func Sig(loc Loc, params *Hash, ret Expr) *Send {
	return sig(loc, params, "returns", ret)
}

// SigVoid returns sig {params(...).void}.
func SigVoid(loc Loc, params *Hash) *Send {
	return sig(loc, params, "void")
}

func sig(loc Loc, params *Hash, fun string, args ...Expr) *Send {
	var recv Expr
	if params != nil && len(params.Keys) > 0 {
		recv = Call(loc, nil, "params", params)
	}

	body := Call(loc, recv, fun, args...)

	return &Send{Loc: loc, Fun: "sig", Block: &Block{Loc: loc, Body: body}}
}

// Method returns a method definition.
func Method(loc Loc, name string, args []Expr, body Expr, flags MethodFlags) *MethodDef {
	if body == nil {
		body = Empty(loc)
	}

	return &MethodDef{Loc: loc, Name: name, Args: args, Body: body, Flags: flags}
}

// Method0 returns a method definition without parameters.
func Method0(loc Loc, name string, body Expr) *MethodDef {
	return Method(loc, name, nil, body, 0)
}

// Method1 returns a method definition with a single positional parameter.
func Method1(loc Loc, name, param string, body Expr) *MethodDef {
	return Method(loc, name, []Expr{NewLocal(loc, param)}, body, 0)
}

// NewClass returns a class definition.
func NewClass(loc Loc, name Expr, ancestors, body []Expr) *ClassDef {
	return &ClassDef{Loc: loc, Kind: Class, Name: name, Ancestors: ancestors, Body: body}
}

// NewModule returns a module definition.
func NewModule(loc Loc, name Expr, body []Expr) *ClassDef {
	return &ClassDef{Loc: loc, Kind: Module, Name: name, Body: body}
}
