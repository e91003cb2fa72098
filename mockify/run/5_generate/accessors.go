package generate

import (
	"slices"
	"strings"

	ctext "github.com/toejough/mockify/mockify/run/0_util"
	parse "github.com/toejough/mockify/mockify/run/4_parse"
)

// Exported constants.
const (
	// Placeholder marks where the operator must supply a default or expected value.
	Placeholder = "WRITEME"
	// CheckMe flags a guess the operator has to verify.
	CheckMe = "/* CHECKME */"
	// OutputParamFlag flags a pointer parameter assumed to be written by the real function.
	OutputParamFlag = "/* CHECKME: ASSUMED OUTPUT PARAMETER */"
)

// Accessor names, one per CppUTest return value category.
const (
	AccessorString          = "returnStringValueOrDefault"
	AccessorConstPointer    = "returnConstPointerValueOrDefault"
	AccessorPointer         = "returnPointerValueOrDefault"
	AccessorInt             = "returnIntValueOrDefault"
	AccessorUnsignedInt     = "returnUnsignedIntValueOrDefault"
	AccessorLongInt         = "returnLongIntValueOrDefault"
	AccessorUnsignedLongInt = "returnUnsignedLongIntValueOrDefault"
	AccessorDouble          = "returnDoubleValueOrDefault"
	AccessorBool            = "returnBoolValueOrDefault"
)

// KnownReturnType pairs a scalar return type spelling with the accessor used for it.
type KnownReturnType struct {
	Spelling string
	Accessor string
}

// KnownReturnTypes returns the scalar return types with a designated accessor, in table order.
func KnownReturnTypes() []KnownReturnType {
	return append([]KnownReturnType(nil), knownReturnTypes...)
}

// NativeTypes returns the scalar spellings that need no cast on the returned value.
func NativeTypes() []string {
	return append([]string(nil), nativeTypes...)
}

// NeedsCast reports whether the accessor's result must be cast back to returnType.
func NeedsCast(returnType string) bool {
	return !slices.Contains(nativeTypes, ctext.NormalizeSpace(returnType))
}

// ParamCall renders how one parameter is recorded on the expected call.
// Pointers are assumed to be output parameters, except const char * which is taken to be a string input.
func ParamCall(param parse.Parameter) string {
	if param.IsPointer() && param.Type != "const char" {
		return "." + outputParameterRecorder + `("` + param.Name + `", ` + param.Name + ")" +
			accessorSeparator + OutputParamFlag
	}

	return "." + inputParameterRecorder + `("` + param.Name + `", ` + param.Name + ")"
}

// ReturnAccessor picks the accessor call for a (trimmed, non-void) return type. The first matching rule
// wins; types the tables don't know fall back to a long accessor flagged with CHECKME.
func ReturnAccessor(returnType string) string {
	switch {
	case strings.HasPrefix(returnType, "const char") && ctext.CountPointers(returnType) == 1:
		return AccessorString + placeholderCallArguments
	case strings.Contains(returnType, "const") && ctext.HasPointer(returnType):
		return AccessorConstPointer + placeholderCallArguments
	case ctext.HasPointer(returnType):
		return AccessorPointer + placeholderCallArguments
	}

	spelling := ctext.NormalizeSpace(returnType)

	for _, known := range knownReturnTypes {
		if known.Spelling == spelling {
			return known.Accessor + placeholderCallArguments
		}
	}

	if strings.Contains(returnType, "unsigned") || strings.Contains(returnType, "uint") {
		return AccessorUnsignedLongInt + placeholderCallArguments + accessorSeparator + CheckMe
	}

	return AccessorLongInt + placeholderCallArguments + accessorSeparator + CheckMe
}

// unexported constants.
const (
	accessorSeparator        = "    "
	inputParameterRecorder   = "withParameter"
	outputParameterRecorder  = "withOutputParameter"
	placeholderCallArguments = "(" + Placeholder + ")"
)

// unexported variables.
var (
	//nolint:gochecknoglobals // static lookup table
	knownReturnTypes = []KnownReturnType{
		{Spelling: "int", Accessor: AccessorInt},
		{Spelling: "signed", Accessor: AccessorInt},
		{Spelling: "signed int", Accessor: AccessorInt},
		{Spelling: "unsigned int", Accessor: AccessorUnsignedInt},
		{Spelling: "unsigned", Accessor: AccessorUnsignedInt},
		{Spelling: "long int", Accessor: AccessorLongInt},
		{Spelling: "long", Accessor: AccessorLongInt},
		{Spelling: "signed long", Accessor: AccessorLongInt},
		{Spelling: "signed long int", Accessor: AccessorLongInt},
		{Spelling: "unsigned long int", Accessor: AccessorUnsignedLongInt},
		{Spelling: "unsigned long", Accessor: AccessorUnsignedLongInt},
		{Spelling: "double", Accessor: AccessorDouble},
		{Spelling: "float", Accessor: AccessorDouble},
		{Spelling: "bool", Accessor: AccessorBool},
		{Spelling: "size_t", Accessor: AccessorUnsignedLongInt},
	}
	//nolint:gochecknoglobals // static lookup table
	nativeTypes = []string{
		"char",
		"int",
		"uint8_t",
		"uint16_t",
		"uint32_t",
		"int8_t",
		"int16_t",
		"int32_t",
		"float",
		"double",
		"bool",
		"long",
		"long long",
		"unsigned long",
		"unsigned long long",
		"short",
		"unsigned short",
	}
)
