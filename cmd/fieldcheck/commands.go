package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/dmitrymomot/contactkit/pkg/callingcode"
	"github.com/dmitrymomot/contactkit/pkg/contact"
)

// checked is the rendering of an accepted value.
type checked struct {
	value   string
	key     string
	masked  string
	details []string
}

type checker func(a *app, raw string) (checked, error)

var checkers = map[string]checker{
	"name": func(_ *app, raw string) (checked, error) {
		n, err := contact.NewName(raw)
		return checked{value: n.String(), masked: n.String()}, err
	},
	"phone": checkPhone,
	"email": func(_ *app, raw string) (checked, error) {
		e, err := contact.NewEmail(raw)
		return checked{value: e.String(), key: e.Key(), masked: e.Masked()}, err
	},
	"address": func(_ *app, raw string) (checked, error) {
		v, err := contact.NewAddress(raw)
		return checked{value: v.String(), masked: mask(v.String())}, err
	},
	"note": func(_ *app, raw string) (checked, error) {
		v, err := contact.NewNote(raw)
		return checked{value: v.String(), masked: mask(v.String())}, err
	},
	"organisation": func(_ *app, raw string) (checked, error) {
		v, err := contact.NewOrganisation(raw)
		return checked{value: v.String(), masked: v.String()}, err
	},
	"remark": func(_ *app, raw string) (checked, error) {
		r := contact.NewRemark(raw)
		return checked{value: r.String(), masked: mask(r.String())}, nil
	},
	"offset": checkOffset,
}

func checkPhone(a *app, raw string) (checked, error) {
	p, err := contact.NewPhone(raw)
	if err != nil {
		return checked{}, err
	}
	out := checked{value: p.String(), key: p.Key(), masked: p.Masked()}
	if p.HasCountryCode() {
		key := lo.Ternary(p.KnownCountryCode(), "contact.country_code", "contact.unknown_country_code")
		detail := a.tr.Tc(a.ctx, key, "code", p.CountryCode())
		if region := p.Region(); region != "" {
			detail += " " + region
		}
		out.details = append(out.details, detail)
	}
	return out, nil
}

func checkOffset(a *app, raw string) (checked, error) {
	o, err := contact.NewOffset(raw)
	if err != nil {
		return checked{}, err
	}
	return checked{
		value:   o.String(),
		masked:  o.String(),
		details: []string{a.tr.Tc(a.ctx, "contact.total_minutes", "minutes", strconv.Itoa(o.TotalMinutes()))},
	}, nil
}

// mask keeps free text out of logs.
func mask(s string) string {
	return fmt.Sprintf("<%d chars>", len([]rune(s)))
}

// FieldArgs holds the positional values of the single-field commands.
type FieldArgs struct {
	Values []string `arg:"" optional:"" help:"Values to check. Reads one value per line from stdin when omitted."`
}

// NameCmd checks person names.
type NameCmd struct{ FieldArgs }

func (c *NameCmd) Run(a *app) error { return a.checkAll("name", c.Values) }

// PhoneCmd checks phone numbers.
type PhoneCmd struct{ FieldArgs }

func (c *PhoneCmd) Run(a *app) error { return a.checkAll("phone", c.Values) }

// EmailCmd checks email addresses.
type EmailCmd struct{ FieldArgs }

func (c *EmailCmd) Run(a *app) error { return a.checkAll("email", c.Values) }

// AddressCmd checks postal addresses.
type AddressCmd struct{ FieldArgs }

func (c *AddressCmd) Run(a *app) error { return a.checkAll("address", c.Values) }

// NoteCmd checks notes.
type NoteCmd struct{ FieldArgs }

func (c *NoteCmd) Run(a *app) error { return a.checkAll("note", c.Values) }

// OrganisationCmd checks organisation names.
type OrganisationCmd struct{ FieldArgs }

func (c *OrganisationCmd) Run(a *app) error { return a.checkAll("organisation", c.Values) }

// RemarkCmd checks remarks. Every remark is accepted.
type RemarkCmd struct{ FieldArgs }

func (c *RemarkCmd) Run(a *app) error { return a.checkAll("remark", c.Values) }

// OffsetCmd checks UTC offsets.
type OffsetCmd struct{ FieldArgs }

func (c *OffsetCmd) Run(a *app) error { return a.checkAll("offset", c.Values) }

// CodesCmd lists the calling-code table.
type CodesCmd struct {
	Prefix string `arg:"" optional:"" help:"Only list codes starting with this prefix."`
}

func (c *CodesCmd) Run(a *app) error {
	codes := lo.Filter(callingcode.Codes(), func(code string, _ int) bool {
		return strings.HasPrefix(code, strings.TrimPrefix(c.Prefix, "+"))
	})
	for _, code := range codes {
		entry, _ := callingcode.Lookup(code)
		if _, err := fmt.Fprintf(a.stdout, "+%s\t%s\n", code, strings.Join(entry.Regions, ",")); err != nil {
			return err
		}
	}
	return nil
}
