// Package common provides result construction and parameter extraction
// helpers for the math operation modules.
//
// Extraction helpers route every value through the numeric normalizer and
// prefix failures with the parameter name, so module code stays a handful of
// lines per operation:
//
//	x, serr := common.Number(params, "x")
//	if serr != nil {
//		return common.Fail(serr)
//	}
//	return common.Success(map[string]interface{}{"result": gomath.Sqrt(x)})
package common
