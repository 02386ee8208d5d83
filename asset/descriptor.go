package asset

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyPublicID       = errors.New("public id is required")
	ErrInvalidAssetType    = errors.New("invalid asset type")
	ErrInvalidDeliveryType = errors.New("invalid delivery type")
	ErrInvalidSuffix       = errors.New("invalid url suffix")
)

// Descriptor identifies a single deliverable asset.
type Descriptor struct {
	PublicID     string
	Extension    string
	Suffix       string
	Version      string
	AssetType    Type
	DeliveryType DeliveryType
}

// Option configures a Descriptor built by Parse or Random.
type Option func(*Descriptor)

// WithAssetType sets the asset type.
func WithAssetType(t Type) Option {
	return func(d *Descriptor) { d.AssetType = t }
}

// WithDeliveryType sets the delivery type.
func WithDeliveryType(dt DeliveryType) Option {
	return func(d *Descriptor) { d.DeliveryType = dt }
}

// WithVersion sets the version. A leading "v" is stripped.
func WithVersion(v string) Option {
	return func(d *Descriptor) { d.Version = strings.TrimPrefix(v, "v") }
}

// WithSuffix sets the SEO suffix appended to the public ID.
func WithSuffix(s string) Option {
	return func(d *Descriptor) { d.Suffix = s }
}

// WithExtension overrides the extension, replacing one parsed from the source.
func WithExtension(ext string) Option {
	return func(d *Descriptor) { d.Extension = strings.TrimPrefix(ext, ".") }
}

// Parse builds a Descriptor from a source such as "folder/sample.jpg".
// The trailing extension is split off the public ID unless the delivery type
// is remote, in which case the source is kept verbatim.
func Parse(source string, opts ...Option) Descriptor {
	d := Descriptor{
		AssetType:    Image,
		DeliveryType: Upload,
	}
	for _, opt := range opts {
		opt(&d)
	}

	ext := d.Extension
	d.PublicID = source
	if !d.DeliveryType.Remote() {
		if e := path.Ext(source); len(e) > 1 {
			d.PublicID = strings.TrimSuffix(source, e)
			if ext == "" {
				ext = e[1:]
			}
		}
	}
	d.Extension = ext

	return d
}

// Random builds a Descriptor with a freshly generated public ID.
func Random(opts ...Option) Descriptor {
	return Parse(strings.ReplaceAll(uuid.NewString(), "-", ""), opts...)
}

// PublicIDWithExtension returns the public ID followed by ".ext" when an
// extension is set.
func (d Descriptor) PublicIDWithExtension() string {
	if d.Extension == "" {
		return d.PublicID
	}
	return d.PublicID + "." + d.Extension
}

// Validate checks the descriptor for values the delivery API rejects.
func (d Descriptor) Validate() error {
	if d.PublicID == "" {
		return ErrEmptyPublicID
	}
	if !d.AssetType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidAssetType, d.AssetType)
	}
	if !d.DeliveryType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDeliveryType, d.DeliveryType)
	}
	if strings.ContainsAny(d.Suffix, "./") {
		return fmt.Errorf("%w: %q must not contain '.' or '/'", ErrInvalidSuffix, d.Suffix)
	}
	return nil
}

// String renders the descriptor as "type/delivery/public_id.ext".
func (d Descriptor) String() string {
	return fmt.Sprintf("%s/%s/%s", d.AssetType, d.DeliveryType, d.PublicIDWithExtension())
}
