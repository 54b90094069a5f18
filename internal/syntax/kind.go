package syntax

// NodeKind represents the category of a syntax tree node.
type NodeKind uint8

const (
	// NodeInvalid indicates an erroneous node.
	NodeInvalid NodeKind = iota
	// NodeSourceFile is the root node of a parsed file.
	NodeSourceFile
	// NodeFn is a function declaration.
	NodeFn
	// NodeStruct is a struct declaration (braced or unit form).
	NodeStruct
	// NodeImpl is an impl block.
	NodeImpl
	// NodeParam is a function parameter.
	NodeParam
	// NodeField is a struct field declaration.
	NodeField
	// NodeName is an identifier leaf (declaration name or path segment).
	NodeName
	// NodeTypeRef is a type reference.
	NodeTypeRef
	// NodeBlock is a braced block: statements plus an optional tail expression.
	NodeBlock
	// NodeLet is a let statement.
	NodeLet
	// NodeReturn is a return statement.
	NodeReturn
	// NodeLiteral is an int/float/string/bool literal leaf.
	NodeLiteral
	// NodePath is a (possibly qualified) name used in expression position.
	NodePath
	// NodeCall is a call expression: callee followed by arguments.
	NodeCall
	// NodeStructLit is a record literal: type path followed by field inits.
	NodeStructLit
	// NodeFieldInit is a single `name: expr` entry of a struct literal.
	NodeFieldInit
	// NodeFieldAccess is `expr.field`.
	NodeFieldAccess
	// NodeBinary is a binary operator expression.
	NodeBinary
)

func (k NodeKind) String() string {
	switch k {
	case NodeSourceFile:
		return "SourceFile"
	case NodeFn:
		return "Fn"
	case NodeStruct:
		return "Struct"
	case NodeImpl:
		return "Impl"
	case NodeParam:
		return "Param"
	case NodeField:
		return "Field"
	case NodeName:
		return "Name"
	case NodeTypeRef:
		return "TypeRef"
	case NodeBlock:
		return "Block"
	case NodeLet:
		return "Let"
	case NodeReturn:
		return "Return"
	case NodeLiteral:
		return "Literal"
	case NodePath:
		return "Path"
	case NodeCall:
		return "Call"
	case NodeStructLit:
		return "StructLit"
	case NodeFieldInit:
		return "FieldInit"
	case NodeFieldAccess:
		return "FieldAccess"
	case NodeBinary:
		return "Binary"
	default:
		return "Invalid"
	}
}

// IsModuleItem reports whether nodes of this kind are module items: the
// top-level declarations at which stable identities are assigned.
func (k NodeKind) IsModuleItem() bool {
	switch k {
	case NodeFn, NodeStruct, NodeImpl:
		return true
	default:
		return false
	}
}
