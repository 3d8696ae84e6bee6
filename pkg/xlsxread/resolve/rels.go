package resolve

import (
	"fmt"
	"path"
	"strings"

	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/raw"
)

// ManifestPath returns the path of the relationship manifest that
// describes partPath. Manifests live in a _rels directory next to the
// part, named after it with a .rels suffix; the empty part path names
// the package root manifest.
func ManifestPath(partPath string) string {
	dir, name := path.Split(partPath)
	return dir + "_rels/" + name + ".rels"
}

// FindByID returns the manifest entry with the given id. Ids compare
// case-insensitively; writers disagree on generated id casing.
func FindByID(rels *raw.Relationships, id string) (*raw.Relationship, bool) {
	if rels == nil || id == "" {
		return nil, false
	}
	for i := range rels.Items {
		if strings.EqualFold(rels.Items[i].ID, id) {
			return &rels.Items[i], true
		}
	}
	return nil, false
}

// FindByType returns the first manifest entry whose type URI contains
// the fragment, compared case-insensitively.
func FindByType(rels *raw.Relationships, typeFragment string) (*raw.Relationship, bool) {
	if rels == nil || typeFragment == "" {
		return nil, false
	}
	fragment := strings.ToLower(typeFragment)
	for i := range rels.Items {
		if strings.Contains(strings.ToLower(rels.Items[i].Type), fragment) {
			return &rels.Items[i], true
		}
	}
	return nil, false
}

// TargetPathByID resolves a relationship id to a package entry path,
// normalized against the part owning the manifest. A nil manifest
// resolves every id to nothing, since a part without a manifest makes
// no assertions. A present manifest missing the id fails with
// ErrRelationshipNotFound. External targets return as written.
func TargetPathByID(rels *raw.Relationships, ownerPath, id string) (string, error) {
	if rels == nil {
		return "", nil
	}
	rel, ok := FindByID(rels, id)
	if !ok {
		return "", integrityErr(fmt.Sprintf("relationship %q of %s", id, ownerPath), ErrRelationshipNotFound)
	}
	if rel.TargetMode == raw.TargetModeExternal {
		return rel.Target, nil
	}
	return NormalizeTarget(ownerPath, rel.Target), nil
}

// TargetPathByType resolves the first relationship of a type to a
// package entry path. Absence of the type is not an error; parts
// without, say, a shared-strings relationship simply have none.
func TargetPathByType(rels *raw.Relationships, ownerPath, typeFragment string) (string, bool) {
	rel, ok := FindByType(rels, typeFragment)
	if !ok || rel.TargetMode == raw.TargetModeExternal {
		return "", false
	}
	return NormalizeTarget(ownerPath, rel.Target), true
}

// NormalizeTarget resolves a manifest target against the part owning
// the manifest, yielding a package entry path without a leading slash.
// Rooted targets resolve from the package root; relative ones from the
// owning part's directory, with parent segments folded away.
func NormalizeTarget(ownerPath, target string) string {
	target = strings.ReplaceAll(target, `\`, "/")
	if strings.HasPrefix(target, "/") {
		return path.Clean(strings.TrimPrefix(target, "/"))
	}
	return path.Join(path.Dir(ownerPath), target)
}
