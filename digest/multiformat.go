package digest

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"
	"github.com/multiformats/go-varint"
)

// MultihashCode returns the multicodec table code for the algorithm, or 0
// when the table has none.
func (a Algorithm) MultihashCode() uint64 {
	switch a {
	case MD5:
		return multihash.MD5
	case SHA256:
		return multihash.SHA2_256
	}
	return 0
}

// Multihash returns the digest as a self-describing multihash: a varint
// algorithm code, a varint digest length, then the digest bytes.
func Multihash(d Digest) (multihash.Multihash, error) {
	code := d.Algorithm().MultihashCode()
	if code == 0 {
		return nil, fmt.Errorf("no multihash code for %s", d.Algorithm())
	}

	raw := d.Bytes()
	size := uint64(len(raw))
	buf := make([]byte, varint.UvarintSize(code)+varint.UvarintSize(size)+len(raw))
	n := varint.PutUvarint(buf, code)
	n += varint.PutUvarint(buf[n:], size)
	copy(buf[n:], raw)

	return multihash.Multihash(buf), nil
}

// Link returns a CIDv1 with the raw codec wrapping the digest's multihash.
func Link(d Digest) (cid.Cid, error) {
	mh, err := Multihash(d)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(uint64(multicodec.Raw), mh), nil
}

// Encode renders the raw digest bytes in the given multibase encoding,
// e.g. multibase.Base64 for a compact textual form.
func Encode(d Digest, encoding multibase.Encoding) (string, error) {
	return multibase.Encode(encoding, d.Bytes())
}
