package media

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gobeaver/beaver-media/asset"
	"github.com/gobeaver/beaver-media/krypto"
	"github.com/gobeaver/beaver-media/transformation"
)

const (
	// ShortenAssetType replaces image/upload when shortening is on.
	ShortenAssetType = "iu"

	shortSignatureLength = 8
	longSignatureLength  = 32
)

var (
	versionPattern   = regexp.MustCompile(`^v[0-9]+`)
	remoteURLPattern = regexp.MustCompile(`^https?:/`)
)

type route struct {
	assetType    asset.Type
	deliveryType asset.DeliveryType
}

// suffixRoutes maps asset/delivery pairs that support SEO suffixes to the
// single token replacing both.
var suffixRoutes = map[route]string{
	{asset.Image, asset.Upload}:        "images",
	{asset.Raw, asset.Upload}:          "files",
	{asset.Video, asset.Upload}:        "videos",
	{asset.Image, asset.Private}:       "private_images",
	{asset.Image, asset.Authenticated}: "authenticated_images",
}

// finalizeTransformation resolves the transformation component. with is
// appended to the asset's own chain, or replaces it when appendMode is
// false. The asset's chain is never modified.
func (a *Asset) finalizeTransformation(with *transformation.Transformation, appendMode bool) string {
	if with == nil && !a.urlConfig.ResponsiveWidth {
		return a.transformation.String()
	}

	if !appendMode || a.transformation == nil {
		return with.String()
	}

	resulting := a.transformation.Clone()

	if a.urlConfig.ResponsiveWidth {
		resulting.Add(a.urlConfig.responsiveWidthTransformation())
	}

	resulting.AddTransformation(with)

	return resulting.String()
}

// finalizeSimpleSignature signs the asset's own transformation and the
// public ID with its extension. Transformations passed at URL time and the
// responsive width step are not signed. It is empty unless signing is on,
// and an enabled auth token replaces it.
func (a *Asset) finalizeSimpleSignature() (string, error) {
	if !a.urlConfig.SignURL || a.builder.token.IsEnabled() {
		return "", nil
	}

	toSign := implodeURL(a.transformation.String(), a.descriptor.PublicIDWithExtension())

	algo, length := krypto.SHA1, shortSignatureLength
	if a.urlConfig.LongURLSignature {
		algo, length = krypto.SHA256, longSignatureLength
	}

	raw, err := krypto.SignWithSecret(toSign, a.builder.cfg.Cloud.APISecret, algo)
	if err != nil {
		return "", fmt.Errorf("sign url: %w", err)
	}

	return formatSimpleSignature(krypto.Base64URLEncode(raw), length), nil
}

func formatSimpleSignature(signature string, length int) string {
	if len(signature) > length {
		signature = signature[:length]
	}
	return "s--" + signature + "--"
}

// finalizeShorten applies the shortening rule to the asset-type token.
// Only image/upload is shortened. An empty result drops the token.
func (a *Asset) finalizeShorten(assetType string) string {
	if a.urlConfig.Shorten &&
		a.descriptor.DeliveryType == asset.Upload &&
		a.descriptor.AssetType == asset.Image {
		assetType = ShortenAssetType
	}

	if a.urlConfig.UseRootPath {
		assetType = ""
	}

	return assetType
}

// finalizeAssetType resolves the asset-type and delivery-type tokens. The
// delivery type is dropped whenever the asset type token was rewritten.
func (a *Asset) finalizeAssetType() (string, string, error) {
	d := a.descriptor

	if a.urlConfig.UseRootPath && (d.AssetType != asset.Image || d.DeliveryType != asset.Upload) {
		return "", "", fmt.Errorf("%w: got %s/%s", ErrRootPathUnsupported, d.AssetType, d.DeliveryType)
	}

	if d.Suffix != "" {
		token, ok := suffixRoutes[route{d.AssetType, d.DeliveryType}]
		if !ok {
			return "", "", fmt.Errorf("%w: %s/%s", ErrSuffixUnsupported, d.AssetType, d.DeliveryType)
		}
		if a.urlConfig.UseRootPath {
			return "", "", nil
		}
		return token, "", nil
	}

	assetType := a.finalizeShorten(string(d.AssetType))
	if assetType != string(d.AssetType) {
		return assetType, "", nil
	}

	return assetType, string(d.DeliveryType), nil
}

// finalizeVersion returns the version component. Folder public IDs get v1
// when ForceVersion is on so they cannot be mistaken for transformations.
func (a *Asset) finalizeVersion() string {
	d := a.descriptor
	if d.Version != "" {
		return "v" + d.Version
	}

	if !a.urlConfig.ForceVersion || d.DeliveryType.Remote() {
		return ""
	}

	if strings.Contains(d.PublicID, "/") &&
		!versionPattern.MatchString(d.PublicID) &&
		!remoteURLPattern.MatchString(d.PublicID) {
		return "v1"
	}

	return ""
}

// finalizeSource escapes the public ID and appends suffix and extension.
// Remote sources are escaped as a whole and never get an extension.
func (a *Asset) finalizeSource() string {
	d := a.descriptor
	source := smartEscape(d.PublicID)

	if d.DeliveryType.Remote() {
		return source
	}

	if d.Suffix != "" {
		source += "/" + d.Suffix
	}
	if d.Extension != "" {
		source += "." + d.Extension
	}
	return source
}

// finalizeDistribution returns scheme, host and, on the shared domain, the
// cloud name.
func (a *Asset) finalizeDistribution() (prefix, pathPrefix string) {
	c := a.urlConfig
	cloud := a.builder.cfg.Cloud.CloudName

	host := c.deliveryHost()
	if c.PrivateCDN {
		host = cloud + "-" + host
	}

	scheme := "http"
	switch {
	case c.Secure:
		scheme = "https"
		if c.SecureDistribution != "" {
			host = c.SecureDistribution
		}
	case c.CName != "":
		host = c.CName
	}

	if !c.PrivateCDN {
		pathPrefix = "/" + cloud
	}

	return scheme + "://" + host, pathPrefix
}

// implodeURL joins the non-empty parts with "/".
func implodeURL(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "/")
}

// smartEscape percent-encodes everything outside [A-Za-z0-9_.\-/:].
func smartEscape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSafe(c) {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

func isSafe(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("_.-/:", c) >= 0
}
