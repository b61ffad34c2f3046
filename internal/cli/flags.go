package cli

import (
	"github.com/alexanderramin/recall/internal/domain"
	"github.com/alexanderramin/recall/internal/importer"
	"github.com/spf13/pflag"
)

// dateValue is a YYYY-MM-DD flag. Malformed input is rejected at parse
// time with domain.ErrInvalidDateFormat.
type dateValue struct {
	d *domain.Date
}

var _ pflag.Value = (*dateValue)(nil)

func (v *dateValue) String() string {
	if v.d == nil || v.d.IsZero() {
		return ""
	}
	return v.d.String()
}

func (v *dateValue) Set(s string) error {
	d, err := domain.ParseDate(s)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

func (v *dateValue) Type() string { return "date" }

func dateVar(fs *pflag.FlagSet, p *domain.Date, name, usage string) {
	fs.Var(&dateValue{d: p}, name, usage)
}

type formatValue struct {
	f *importer.Format
}

var _ pflag.Value = (*formatValue)(nil)

func (v *formatValue) String() string { return string(*v.f) }

func (v *formatValue) Set(s string) error {
	f, err := importer.ParseFormat(s)
	if err != nil {
		return err
	}
	*v.f = f
	return nil
}

func (v *formatValue) Type() string { return "format" }

func formatVar(fs *pflag.FlagSet, p *importer.Format, name, usage string) {
	fs.Var(&formatValue{f: p}, name, usage)
}

// userVar registers the --user flag shared by per-user commands.
func userVar(fs *pflag.FlagSet, p *string) {
	fs.StringVarP(p, "user", "u", "", "User ID")
}
