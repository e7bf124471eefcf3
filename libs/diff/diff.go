package diff

import (
	"math"
	"reflect"

	odiff "github.com/r3labs/diff/v3"
)

// tolerance below which two amounts count as equal, matching the float
// comparison threshold used by the trip package
const tolerance = 1e-9

func GetCustomDiffer() *odiff.Differ {
	ret, err := odiff.NewDiffer(odiff.CustomValueDiffers(&AmountComparer{}))
	if err != nil {
		panic(err)
	}
	return ret
}

// AmountComparer diffs float64 fields with a tolerance, so two results that
// differ only by float noise produce an empty changelog.
type AmountComparer struct{}

var float64Type = reflect.TypeOf(float64(0))

// Match check is field match this custom type
func (c AmountComparer) Match(a, b reflect.Value) bool {
	aok := a.Kind() == reflect.Float64 && a.Type() == float64Type
	bok := b.Kind() == reflect.Float64 && b.Type() == float64Type
	return (aok && bok) || (a.Kind() == reflect.Invalid && bok) || (b.Kind() == reflect.Invalid && aok)
}

// Diff check is diff or not
func (c AmountComparer) Diff(_ odiff.DiffType, _ odiff.DiffFunc, cl *odiff.Changelog, path []string, a reflect.Value, b reflect.Value, _ interface{}) error {
	valA := reflect.Indirect(a)
	valB := reflect.Indirect(b)

	if !valA.IsValid() || !valB.IsValid() {
		if valA.IsValid() != valB.IsValid() {
			cl.Add(odiff.UPDATE, path, a.Interface(), b.Interface())
		}
		return nil
	}

	f1 := valA.Float()
	f2 := valB.Float()

	if math.Abs(f1-f2) > tolerance {
		cl.Add(odiff.UPDATE, path, f1, f2)
	}
	return nil
}

// InsertParentDiffer do something with parent,
// float64 is leaf, so do nothing
func (c AmountComparer) InsertParentDiffer(_ func(path []string, a reflect.Value, b reflect.Value, p interface{}) error) {
	// do nothing
}
