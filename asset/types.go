package asset

// Type is the asset-type token of a delivery URL.
type Type string

const (
	Image Type = "image"
	Video Type = "video"
	Raw   Type = "raw"
	Auto  Type = "auto"
)

// Valid reports whether t is a known asset type.
func (t Type) Valid() bool {
	switch t {
	case Image, Video, Raw, Auto:
		return true
	}
	return false
}

// DeliveryType is the delivery-type token of a delivery URL.
type DeliveryType string

const (
	Upload        DeliveryType = "upload"
	Private       DeliveryType = "private"
	Public        DeliveryType = "public"
	Authenticated DeliveryType = "authenticated"
	Fetch         DeliveryType = "fetch"
	List          DeliveryType = "list"
	Multi         DeliveryType = "multi"
	Text          DeliveryType = "text"
	Sprite        DeliveryType = "sprite"
	Facebook      DeliveryType = "facebook"
	Twitter       DeliveryType = "twitter"
	TwitterName   DeliveryType = "twitter_name"
	Gravatar      DeliveryType = "gravatar"
	YouTube       DeliveryType = "youtube"
	Vimeo         DeliveryType = "vimeo"
)

var deliveryTypes = map[DeliveryType]struct{}{
	Upload: {}, Private: {}, Public: {}, Authenticated: {}, Fetch: {},
	List: {}, Multi: {}, Text: {}, Sprite: {}, Facebook: {}, Twitter: {},
	TwitterName: {}, Gravatar: {}, YouTube: {}, Vimeo: {},
}

// Valid reports whether d is a known delivery type.
func (d DeliveryType) Valid() bool {
	_, ok := deliveryTypes[d]
	return ok
}

// Remote reports whether sources of this delivery type are remote URLs or
// third-party identifiers rather than stored public IDs.
func (d DeliveryType) Remote() bool {
	switch d {
	case Fetch, Facebook, Twitter, TwitterName, Gravatar, YouTube, Vimeo:
		return true
	}
	return false
}
