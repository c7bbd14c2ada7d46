package cli

import (
	"github.com/BurntSushi/toml"

	errs "github.com/layerlp/layerlp/pkg/errors"
)

// Profile is a TOML preset for the compile command. Absent keys leave
// the matching flag default untouched; explicit flags always win over
// profile values.
//
//	objective = "vertical"
//	total = 10
//	seed = 99
type Profile struct {
	Objective  string   `toml:"objective"`
	Total      *int     `toml:"total"`
	Bottleneck *int     `toml:"bottleneck"`
	Stretch    *float64 `toml:"stretch"`
	BNStretch  *float64 `toml:"bn_stretch"`
	Vertical   *int     `toml:"vertical"`
	BNVertical *int     `toml:"bn_vertical"`
	Seed       *uint64  `toml:"seed"`
}

// loadProfile reads a compile profile from a TOML file. Unknown keys are
// rejected so typos in cap names fail loudly instead of silently
// compiling the wrong program.
func loadProfile(path string) (*Profile, error) {
	var p Profile
	meta, err := toml.DecodeFile(path, &p)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidProfile, err, "load profile %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errs.New(errs.ErrCodeInvalidProfile, "profile %s: unknown key %q", path, undecoded[0].String())
	}
	return &p, nil
}
