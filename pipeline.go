package confroot

import "fmt"

// Validator checks and/or completes a configuration value. It returns the
// (possibly mutated) configuration to pass to the next validator, or an
// error to abort the pipeline.
type Validator[T any] func(T) (T, error)

// pipeline is the ordered validator chain of a store. Validators run in
// registration order, each receiving the output of the previous one.
type pipeline[T any] struct {
	validators []Validator[T]
	regErr     error
}

// register appends a validator. A nil validator is not appended; instead the
// first such registration is recorded and surfaced by the next operation
// that consults the pipeline.
func (p *pipeline[T]) register(validator Validator[T]) {
	if validator == nil {
		if p.regErr == nil {
			p.regErr = fmt.Errorf("%w: validator must not be nil", ErrInvalidArgument)
		}

		return
	}

	p.validators = append(p.validators, validator)
}

// pending returns the deferred registration error, if any.
func (p *pipeline[T]) pending() error {
	return p.regErr
}

// validate folds the chain left to right over cfg. With no validators
// registered it returns cfg unchanged. The first validator error aborts the
// fold and is returned as-is, unwrapped; later validators never run.
func (p *pipeline[T]) validate(cfg T) (T, error) {
	var zero T

	if p.regErr != nil {
		return zero, p.regErr
	}

	for i, validate := range p.validators {
		if validate == nil {
			return zero, fmt.Errorf("%w: validator %d is not callable", ErrInvalidState, i)
		}

		next, err := validate(cfg)
		if err != nil {
			return zero, err
		}

		cfg = next
	}

	return cfg, nil
}
