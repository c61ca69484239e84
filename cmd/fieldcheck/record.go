package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/dmitrymomot/contactkit/pkg/contact"
	"github.com/dmitrymomot/contactkit/pkg/logger"
)

// record is the JSON shape accepted by the record command. Absent and null
// fields decode to nil; only the name is required.
type record struct {
	Name         *string `json:"name" validate:"required,contact_name"`
	Phone        *string `json:"phone" validate:"omitnil,contact_phone"`
	Email        *string `json:"email" validate:"omitnil,contact_email"`
	Address      *string `json:"address" validate:"omitnil,contact_address"`
	Note         *string `json:"note" validate:"omitnil,contact_note"`
	Organisation *string `json:"organisation" validate:"omitnil,contact_organisation"`
	Remark       *string `json:"remark"`
	Offset       *string `json:"offset" validate:"omitnil,utc_offset"`
}

func (r *record) fields() []lo.Tuple2[string, *string] {
	return []lo.Tuple2[string, *string]{
		lo.T2("name", r.Name),
		lo.T2("phone", r.Phone),
		lo.T2("email", r.Email),
		lo.T2("address", r.Address),
		lo.T2("note", r.Note),
		lo.T2("organisation", r.Organisation),
		lo.T2("remark", r.Remark),
		lo.T2("offset", r.Offset),
	}
}

// RecordCmd validates a whole contact record read from a JSON file or stdin.
type RecordCmd struct {
	File string `arg:"" optional:"" default:"-" help:"JSON file to read, or - for stdin."`
}

func (c *RecordCmd) Run(a *app) error {
	rec, err := c.read(a)
	if err != nil {
		return err
	}
	for _, f := range []**string{&rec.Name, &rec.Phone, &rec.Email, &rec.Address, &rec.Note, &rec.Organisation, &rec.Remark, &rec.Offset} {
		if *f != nil {
			*f = lo.ToPtr(a.prepare(**f))
		}
	}

	failed, err := structFailures(rec)
	if err != nil {
		return err
	}
	a.log.DebugContext(a.ctx, "record validated", logger.Component("record"), logger.Violations(lo.Keys(failed)))

	var results []result
	for _, f := range rec.fields() {
		field, raw := f.Unpack()
		if raw == nil {
			if failed[field] == "required" {
				results = append(results, a.check(field, nil))
			}
			continue
		}
		res := a.check(field, raw)
		if _, bad := failed[field]; bad == res.Valid {
			a.log.WarnContext(a.ctx, "struct tag and field check disagree", logger.Field(field))
		}
		results = append(results, res)
	}
	return a.report(results)
}

func (c *RecordCmd) read(a *app) (*record, error) {
	var r io.Reader = a.stdin
	if c.File != "" && c.File != "-" {
		f, err := os.Open(c.File)
		if err != nil {
			return nil, fmt.Errorf("open record: %w", err)
		}
		defer f.Close()
		r = f
	}

	var rec record
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return &rec, nil
}

var recordValidator = func() *playground.Validate {
	v := contact.NewStructValidator()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// structFailures maps each failing json field name to the tag that failed.
func structFailures(rec *record) (map[string]string, error) {
	err := recordValidator.Struct(rec)
	if err == nil {
		return map[string]string{}, nil
	}
	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, fmt.Errorf("validate record: %w", err)
	}
	return lo.SliceToMap(fieldErrs, func(fe playground.FieldError) (string, string) {
		return fe.Field(), fe.Tag()
	}), nil
}
