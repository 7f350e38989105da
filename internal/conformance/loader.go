package conformance

import (
	"os"

	"github.com/schemaprism/prism/internal/jsonvalue"
)

// LoadedCase is one (groupIndex, caseIndex, group, case) tuple surviving
// decode, per §4.1: malformed substructures are dropped silently but the
// surviving items keep their original position in the file, which is why
// GroupIndex/CaseIndex are carried alongside the tuple rather than
// recomputed from a trimmed slice.
type LoadedCase struct {
	GroupIndex int
	CaseIndex  int
	Group      TestGroup
	Case       TestCase
}

// DecodeFunc parses raw file content into an opaque value, as declared by
// a ValidatorAdapter's Decode method.
type DecodeFunc func(content []byte) (jsonvalue.Value, error)

// LoadTestFile reads path, decodes it with decode, and returns the ordered
// sequence of surviving (group, case) tuples. Any of an unreadable file, a
// decoder error, or decoded content that is not a JSON array yields an
// empty sequence and no error — the loader never aborts a run over one bad
// file.
func LoadTestFile(path string, decode DecodeFunc) []LoadedCase {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	root, err := decode(content)
	if err != nil || root.Kind() != jsonvalue.Array {
		return nil
	}

	var loaded []LoadedCase
	for groupIdx, groupVal := range root.AsArray() {
		if groupVal.Kind() != jsonvalue.Object {
			continue
		}

		testsVal, ok := groupVal.Field("tests")
		if !ok || testsVal.Kind() != jsonvalue.Array {
			continue
		}

		group := TestGroup{
			Description: stringFieldOr(groupVal, "description", "Unknown group"),
		}
		if schema, ok := groupVal.Field("schema"); ok {
			group.Schema = schema
		} else {
			group.Schema = jsonvalue.NewNull()
		}

		for caseIdx, caseVal := range testsVal.AsArray() {
			if caseVal.Kind() != jsonvalue.Object {
				continue
			}
			tc := decodeCase(caseVal)
			group.Cases = append(group.Cases, tc)
			loaded = append(loaded, LoadedCase{
				GroupIndex: groupIdx,
				CaseIndex:  caseIdx,
				Group:      group,
				Case:       tc,
			})
		}
	}
	return loaded
}

func decodeCase(caseVal jsonvalue.Value) TestCase {
	tc := TestCase{
		Description: stringFieldOr(caseVal, "description", "Unknown test"),
	}

	if data, ok := caseVal.Field("data"); ok {
		tc.Data = data
	} else {
		tc.Data = jsonvalue.NewNull()
	}

	if valid, ok := caseVal.Field("valid"); ok {
		tc.Expected = valid
	} else {
		tc.Expected = jsonvalue.NewBool(false)
	}

	if tagsVal, ok := caseVal.Field("tags"); ok && tagsVal.Kind() == jsonvalue.Array {
		for _, t := range tagsVal.AsArray() {
			if t.Kind() == jsonvalue.String {
				tc.Tags = append(tc.Tags, t.AsString())
			}
		}
	}

	if assertion, ok := caseVal.Field("assertion"); ok && assertion.Kind() == jsonvalue.String {
		tc.AssertionName = assertion.AsString()
	}

	return tc
}

func stringFieldOr(v jsonvalue.Value, key, fallback string) string {
	field, ok := v.Field(key)
	if !ok || field.Kind() != jsonvalue.String {
		return fallback
	}
	return field.AsString()
}
