package adapter

import (
	"fmt"
	"strings"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// URIScheme prefixes content pointers stored on the ledger and in metadata.
const URIScheme = "ipfs://"

// ContentID is a validated content identifier.
type ContentID struct {
	cid cid.Cid
}

// ParseContentID accepts "ipfs://<cid>", "/ipfs/<cid>" or a bare CID.
func ParseContentID(s string) (ContentID, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, URIScheme)
	raw = strings.TrimPrefix(raw, "/ipfs/")
	raw = strings.TrimSuffix(raw, "/")

	c, err := cid.Decode(raw)
	if err != nil {
		return ContentID{}, fmt.Errorf("%w: %q: %w", ErrInvalidContentID, s, err)
	}
	return ContentID{cid: c}, nil
}

// NewRawContentID computes the CIDv1 (raw codec, sha2-256) of data, the id
// a pinning service assigns to an uploaded file with cidVersion 1.
func NewRawContentID(data []byte) (ContentID, error) {
	hash, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return ContentID{}, fmt.Errorf("hash content: %w", err)
	}
	return ContentID{cid: cid.NewCidV1(cid.Raw, hash)}, nil
}

func (c ContentID) String() string {
	if !c.cid.Defined() {
		return ""
	}
	return c.cid.String()
}

// URI renders the id as "ipfs://<cid>".
func (c ContentID) URI() string {
	return URIScheme + c.String()
}

func (c ContentID) IsZero() bool {
	return !c.cid.Defined()
}

// Cid exposes the parsed identifier.
func (c ContentID) Cid() cid.Cid {
	return c.cid
}
