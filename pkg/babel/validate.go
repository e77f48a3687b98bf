package babel

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var hostPattern = regexp.MustCompile(`^http`)

// check returns an ArgumentError wrapping sentinel when value fails rules.
func check(op string, sentinel error, value any, rules ...validation.Rule) error {
	if err := validation.Validate(value, rules...); err != nil {
		return &ArgumentError{Op: op, Err: sentinel}
	}
	return nil
}

// validateConfig checks host presence, port presence and host scheme in that
// order.
func validateConfig(c Config) error {
	if err := validation.Validate(c.Host, validation.Required); err != nil {
		return &ConfigError{Err: ErrMissingHost}
	}
	if err := validation.Validate(c.Port, validation.Required); err != nil {
		return &ConfigError{Err: ErrMissingPort}
	}
	if err := validation.Validate(c.Host, validation.Match(hostPattern)); err != nil {
		return &ConfigError{Err: ErrInvalidHost}
	}
	return nil
}

func validateTargetFeed(target, token string) error {
	const op = "GetTargetFeed"
	if err := check(op, ErrMissingTarget, target, validation.Required); err != nil {
		return err
	}
	return check(op, ErrMissingToken, token, validation.Required)
}

func validateFeeds(feedIDs FeedIDs, token string) error {
	const op = "GetFeeds"
	if feedIDs == nil {
		return &ArgumentError{Op: op, Err: ErrMissingFeeds}
	}
	if err := check(op, ErrEmptyFeeds, []any(feedIDs), validation.Required); err != nil {
		return err
	}
	return check(op, ErrMissingToken, token, validation.Required)
}

func validateAnnotations(token string) error {
	return check("GetAnnotations", ErrMissingToken, token, validation.Required)
}

// validateDraft runs the create checks in a fixed order so that the first
// failure is the one reported.
func validateDraft(token string, a *Annotation) error {
	const op = "CreateAnnotation"
	if err := check(op, ErrMissingToken, token, validation.Required); err != nil {
		return err
	}
	if a == nil {
		a = &Annotation{}
	}
	if err := check(op, ErrMissingHasBody, a.HasBody, validation.Required); err != nil {
		return err
	}
	if err := check(op, ErrMissingHasBodyFormat, a.HasBody.Format, validation.Required); err != nil {
		return err
	}
	if err := check(op, ErrMissingHasBodyType, a.HasBody.Type, validation.Required); err != nil {
		return err
	}
	if err := check(op, ErrMissingAnnotatedBy, a.AnnotatedBy, validation.Required); err != nil {
		return err
	}
	if err := check(op, ErrMissingHasTarget, a.HasTarget, validation.Required); err != nil {
		return err
	}
	if err := check(op, ErrEmptyHasTarget, a.HasTarget.Targets, validation.Required); err != nil {
		return err
	}

	for _, t := range a.HasTarget.Targets {
		if err := check(op, ErrMissingHasTargetURI, t.URI, validation.Required); err != nil {
			return err
		}
	}
	for _, t := range a.HasTarget.Targets {
		if props := t.UnrecognisedProperties(); len(props) > 0 {
			return &ArgumentError{Op: op, Property: props[0], Err: ErrUnrecognisedTargetProperty}
		}
	}
	return nil
}
