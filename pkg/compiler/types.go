package compiler

import "fmt"

// Kind identifies the shape of a resolved Type.
type Kind int

const (
	KindInt Kind = iota
	KindChar
	KindPtr
	KindArray
	KindFunc
	KindStruct
	KindVoid
)

// Field describes one member of a Struct type: its byte offset from the
// struct's base address and its own Type.
type Field struct {
	Name   string
	Offset int
	Type   *Type
}

// Type is the compiler's single representation of a C type in this
// subset: scalars (Int, Char), Ptr(T), Array(T,N), Func(ret,params),
// and Struct(name) with a resolved field layout.
type Type struct {
	Kind     Kind
	Elem     *Type   // Ptr/Array element type
	Len      int     // Array length
	Params   []*Type // Func parameter types
	Return   *Type   // Func return type
	Name     string  // Struct tag name
	Fields   []Field // Struct field layout, in declaration order
	Variadic bool    // Func: true when arity/types are unknown (undeclared callee)
}

var (
	Int  = &Type{Kind: KindInt}
	Char = &Type{Kind: KindChar}
	Void = &Type{Kind: KindVoid}
)

func PtrTo(elem *Type) *Type { return &Type{Kind: KindPtr, Elem: elem} }

func ArrayOf(elem *Type, length int) *Type {
	return &Type{Kind: KindArray, Elem: elem, Len: length}
}

func FuncType(ret *Type, params []*Type, variadic bool) *Type {
	return &Type{Kind: KindFunc, Return: ret, Params: params, Variadic: variadic}
}

func (t *Type) IsPtrOrArray() bool { return t.Kind == KindPtr || t.Kind == KindArray }
func (t *Type) IsScalar() bool     { return t.Kind == KindInt || t.Kind == KindChar }
func (t *Type) IsInteger() bool    { return t.IsScalar() }

// SizeOf returns the size in bytes of a fully resolved type. Array
// size is element size times length; struct size is the sum of member
// sizes (sequential, byte-packed layout — see layoutStruct, which
// computes offsets the same way).
func SizeOf(t *Type) int {
	switch t.Kind {
	case KindInt:
		return 4
	case KindChar:
		return 1
	case KindPtr:
		return 8
	case KindArray:
		return SizeOf(t.Elem) * t.Len
	case KindStruct:
		total := 0
		for _, f := range t.Fields {
			total += SizeOf(f.Type)
		}
		return total
	default:
		return 0
	}
}

// AlignOf equals SizeOf for every type except a struct, which is always
// aligned to 8 bytes.
func AlignOf(t *Type) int {
	if t.Kind == KindStruct {
		return 8
	}
	return SizeOf(t)
}

// Decay turns Array(T,N) into Ptr(T); every other type is returned unchanged.
// Applied at every expression use site except as the operand of & or sizeof.
func Decay(t *Type) *Type {
	if t.Kind == KindArray {
		return PtrTo(t.Elem)
	}
	return t
}

// PointerInner returns the pointee type of a Ptr or (pre-decay) Array type.
func PointerInner(t *Type) (*Type, bool) {
	switch t.Kind {
	case KindPtr:
		return t.Elem, true
	case KindArray:
		return t.Elem, true
	default:
		return nil, false
	}
}

// CommonArithmeticType is always Int in this subset: Char operands are
// promoted to Int on every arithmetic or bitwise operation.
func CommonArithmeticType(a, b *Type) *Type {
	_ = a
	_ = b
	return Int
}

// FieldByName looks up a member of a struct type by name.
func (t *Type) FieldByName(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (t *Type) String() string {
	switch t.Kind {
	case KindInt:
		return "int"
	case KindChar:
		return "char"
	case KindVoid:
		return "void"
	case KindPtr:
		return t.Elem.String() + "*"
	case KindArray:
		return fmt.Sprintf("%s[%d]", t.Elem, t.Len)
	case KindStruct:
		return "struct " + t.Name
	case KindFunc:
		return fmt.Sprintf("%s(...)", t.Return)
	default:
		return "?"
	}
}

// Equal reports whether two resolved types denote the same C type.
func Equal(a, b *Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindPtr:
		return Equal(a.Elem, b.Elem)
	case KindArray:
		return a.Len == b.Len && Equal(a.Elem, b.Elem)
	case KindStruct:
		return a.Name == b.Name
	default:
		return true
	}
}

// layoutStruct computes a sequential, byte-packed field layout (no
// padding) for a struct declaration, in the order fields were declared.
func layoutStruct(name string, fields []VariableDecl, resolve func(VariableDecl) *Type) *Type {
	st := &Type{Kind: KindStruct, Name: name}
	offset := 0
	for _, f := range fields {
		ft := resolve(f)
		st.Fields = append(st.Fields, Field{Name: f.Name, Offset: offset, Type: ft})
		offset += SizeOf(ft)
	}
	return st
}
