// File: internal/enrichment/request.go
package enrichment

import (
	"strings"
)

// Options holds raw parameter values as they arrive from the command line
// or configuration, before validation.
type Options struct {
	Input         string
	FromType      string
	OrgDb         string
	PValueCutoff  float64
	QValueCutoff  float64
	PAdjustMethod string
}

// DefaultOptions returns Options with the optional parameters at their defaults.
func DefaultOptions() Options {
	return Options{
		PValueCutoff:  DefaultCutoff,
		QValueCutoff:  DefaultCutoff,
		PAdjustMethod: string(DefaultAdjustMethod),
	}
}

// InvocationRequest is a validated set of enrichment parameters. Every
// enumerated field is guaranteed to be a member of its fixed set.
type InvocationRequest struct {
	Input         string
	FromType      GeneIDType
	Organism      Organism
	PValueCutoff  float64
	QValueCutoff  float64
	PAdjustMethod AdjustMethod
}

// NewRequest validates opts and returns the corresponding request. It has no
// side effects; in particular it does not touch the filesystem.
func NewRequest(opts Options) (*InvocationRequest, error) {
	if strings.TrimSpace(opts.Input) == "" {
		return nil, InvalidArgumentf("required flag --input not set")
	}
	if opts.FromType == "" {
		return nil, InvalidArgumentf("required flag -fromType not set, expected one of %s", codes(geneIDTypes))
	}
	if !contains(geneIDTypes, opts.FromType) {
		return nil, InvalidArgumentf("-fromType %q is not one of %s", opts.FromType, codes(geneIDTypes))
	}
	if opts.OrgDb == "" {
		return nil, InvalidArgumentf("required flag -OrgDb not set, expected one of %s", codes(organisms))
	}
	if !contains(organisms, opts.OrgDb) {
		return nil, InvalidArgumentf("-OrgDb %q is not one of %s", opts.OrgDb, codes(organisms))
	}

	method := opts.PAdjustMethod
	if method == "" {
		method = string(DefaultAdjustMethod)
	}
	if !contains(adjustMethods, method) {
		return nil, InvalidArgumentf("-pAdjustMethod %q is not one of %s", method, codes(adjustMethods))
	}

	return &InvocationRequest{
		Input:         opts.Input,
		FromType:      GeneIDType(opts.FromType),
		Organism:      Organism(opts.OrgDb),
		PValueCutoff:  opts.PValueCutoff,
		QValueCutoff:  opts.QValueCutoff,
		PAdjustMethod: AdjustMethod(method),
	}, nil
}
