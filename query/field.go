package query

import (
	"fmt"
	"strings"

	"github.com/pacfind/pacfind/alpm"
)

// Field is package attribute addressable from query
type Field int

// Fields
const (
	FieldFilename Field = iota
	FieldName
	FieldDesc
	FieldVersion
	FieldLicense
	FieldGroup
	FieldDepends
	FieldOptDepends
	FieldConflicts
	FieldProvides
	FieldReplaces
	FieldRequiredBy
	FieldURL
	FieldBuildDate
	FieldInstallDate
	FieldPackager
	FieldMD5Sum
	FieldSHA256Sum
	FieldArch
	FieldSize
	FieldISize

	fieldCount
)

var fieldNames = [fieldCount]string{
	FieldFilename:    "filename",
	FieldName:        "name",
	FieldDesc:        "desc",
	FieldVersion:     "version",
	FieldLicense:     "license",
	FieldGroup:       "group",
	FieldDepends:     "depends",
	FieldOptDepends:  "optdepends",
	FieldConflicts:   "conflicts",
	FieldProvides:    "provides",
	FieldReplaces:    "replaces",
	FieldRequiredBy:  "requiredby",
	FieldURL:         "url",
	FieldBuildDate:   "builddate",
	FieldInstallDate: "installdate",
	FieldPackager:    "packager",
	FieldMD5Sum:      "md5sum",
	FieldSHA256Sum:   "sha256sum",
	FieldArch:        "arch",
	FieldSize:        "size",
	FieldISize:       "isize",
}

// Kind is the value type of a field, selecting comparison rules
type Kind int

// Field kinds
const (
	KindString Kind = iota
	KindVersion
	KindInteger
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindVersion:
		return "version"
	case KindInteger:
		return "integer"
	}
	panic(fmt.Sprintf("unknown kind %d", int(k)))
}

// Fields lists all fields in canonical order
func Fields() []Field {
	result := make([]Field, fieldCount)
	for i := range result {
		result[i] = Field(i)
	}
	return result
}

// LookupField finds field by its name
func LookupField(name string) (Field, bool) {
	for i, fieldName := range fieldNames {
		if fieldName == name {
			return Field(i), true
		}
	}
	return 0, false
}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// Kind returns value type of the field
func (f Field) Kind() Kind {
	switch f {
	case FieldVersion:
		return KindVersion
	case FieldBuildDate, FieldInstallDate, FieldSize, FieldISize:
		return KindInteger
	case FieldFilename, FieldName, FieldDesc, FieldLicense, FieldGroup, FieldDepends, FieldOptDepends,
		FieldConflicts, FieldProvides, FieldReplaces, FieldRequiredBy, FieldURL, FieldPackager,
		FieldMD5Sum, FieldSHA256Sum, FieldArch:
		return KindString
	}
	panic(fmt.Sprintf("unknown field %d", int(f)))
}

// IsRelation is true for multi-valued fields
func (f Field) IsRelation() bool {
	switch f {
	case FieldLicense, FieldGroup, FieldDepends, FieldOptDepends, FieldConflicts, FieldProvides,
		FieldReplaces, FieldRequiredBy:
		return true
	case FieldFilename, FieldName, FieldDesc, FieldVersion, FieldURL, FieldBuildDate, FieldInstallDate,
		FieldPackager, FieldMD5Sum, FieldSHA256Sum, FieldArch, FieldSize, FieldISize:
		return false
	}
	panic(fmt.Sprintf("unknown field %d", int(f)))
}

// IsTraversable is true for relations which point to other packages
func (f Field) IsTraversable() bool {
	return f.IsRelation() && f != FieldLicense && f != FieldGroup
}

// scalar returns value of single-valued string or version field
func (f Field) scalar(p *alpm.Package) string {
	switch f {
	case FieldFilename:
		return p.Filename
	case FieldName:
		return p.Name
	case FieldDesc:
		return p.Description
	case FieldVersion:
		return p.Version
	case FieldURL:
		return p.URL
	case FieldPackager:
		return p.Packager
	case FieldMD5Sum:
		return p.MD5Sum
	case FieldSHA256Sum:
		return p.SHA256Sum
	case FieldArch:
		return p.Architecture
	case FieldLicense, FieldGroup, FieldDepends, FieldOptDepends, FieldConflicts, FieldProvides,
		FieldReplaces, FieldRequiredBy, FieldBuildDate, FieldInstallDate, FieldSize, FieldISize:
	}
	panic(fmt.Sprintf("field %s is not a string scalar", f))
}

// integer returns value of numeric field
func (f Field) integer(p *alpm.Package) int64 {
	switch f {
	case FieldBuildDate:
		return p.BuildDate
	case FieldInstallDate:
		return p.InstallDate
	case FieldSize:
		return p.Size
	case FieldISize:
		return p.InstalledSize
	case FieldFilename, FieldName, FieldDesc, FieldVersion, FieldLicense, FieldGroup, FieldDepends,
		FieldOptDepends, FieldConflicts, FieldProvides, FieldReplaces, FieldRequiredBy, FieldURL,
		FieldPackager, FieldMD5Sum, FieldSHA256Sum, FieldArch:
	}
	panic(fmt.Sprintf("field %s is not numeric", f))
}

// specifiers returns raw relation values: dependency specifiers or plain strings
func (f Field) specifiers(p *alpm.Package) []string {
	switch f {
	case FieldLicense:
		return p.Licenses
	case FieldGroup:
		return p.Groups
	case FieldDepends:
		return p.Depends
	case FieldOptDepends:
		return p.OptDepends
	case FieldConflicts:
		return p.Conflicts
	case FieldProvides:
		return p.Provides
	case FieldReplaces:
		return p.Replaces
	case FieldRequiredBy:
		return p.RequiredBy
	case FieldFilename, FieldName, FieldDesc, FieldVersion, FieldURL, FieldBuildDate, FieldInstallDate,
		FieldPackager, FieldMD5Sum, FieldSHA256Sum, FieldArch, FieldSize, FieldISize:
	}
	panic(fmt.Sprintf("field %s is not a relation", f))
}

// values returns comparable elements of relation: names for specifiers
func (f Field) values(p *alpm.Package) []string {
	if !f.IsTraversable() {
		return f.specifiers(p)
	}
	return alpm.DependencyNames(f.specifiers(p))
}

// FieldPath is resolved field path of Predicate
//
// For "depends%.provides.name" it's depends (transitive) -> provides -> name.
type FieldPath struct {
	Field Field
	// Transitive walks relation recursively
	Transitive bool
	// Nested is path applied to related packages, nil for plain fields
	Nested *FieldPath
}

// Leaf returns last element of the path, which is compared with the operand
func (path *FieldPath) Leaf() *FieldPath {
	for path.Nested != nil {
		path = path.Nested
	}
	return path
}

func (path *FieldPath) String() string {
	result := path.Field.String()
	if path.Transitive {
		result += "%"
	}
	if path.Nested != nil {
		result += "." + path.Nested.String()
	}
	return result
}

// ResolveField parses field path like "name", "depends.name" or "depends%.name"
func ResolveField(path string) (*FieldPath, error) {
	head, rest := path, ""
	dotted := false
	if i := strings.IndexByte(path, '.'); i != -1 {
		head, rest, dotted = path[:i], path[i+1:], true
	}

	transitive := strings.HasSuffix(head, "%")
	head = strings.TrimSuffix(head, "%")

	field, ok := LookupField(head)
	if !ok {
		return nil, &ResolutionError{Field: path, Reason: fmt.Sprintf("unknown field %q", head)}
	}

	result := &FieldPath{Field: field, Transitive: transitive}

	if !dotted {
		if transitive {
			return nil, &ResolutionError{Field: path, Reason: "transitive relation requires nested field"}
		}
		return result, nil
	}

	if !field.IsTraversable() {
		return nil, &ResolutionError{Field: path, Reason: fmt.Sprintf("%s is not a selector", field)}
	}

	if rest == "" {
		return nil, &ResolutionError{Field: path, Reason: "missing nested field"}
	}

	nested, err := ResolveField(rest)
	if err != nil {
		if resErr, ok := err.(*ResolutionError); ok {
			resErr.Field = path
		}
		return nil, err
	}

	result.Nested = nested
	return result, nil
}
