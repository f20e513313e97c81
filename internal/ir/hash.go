package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// The version suffix leaves room for algorithm migration.
const (
	DomainStructure = "rbin/structure/v1"
	DomainSighting  = "rbin/sighting/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data).
// The null byte keeps the domain/data boundary unambiguous.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// StructureID computes the content-addressed ID of a structure
// presentation: its variant, its symbol order and its indexed tables.
// The label is excluded; two models that differ only by label share an ID.
func StructureID(variant string, symbols []string, tables IndexedTables) (string, error) {
	obj := IRObject{
		"variant": IRString(variant),
		"symbols": Strings(symbols),
		"tables":  tables.Object(),
	}

	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("StructureID: failed to marshal: %w", err)
	}

	return hashWithDomain(DomainStructure, canonical), nil
}

// SightingID computes the ID of one observation of a model in a batch.
func SightingID(structureID, label, batch string) (string, error) {
	obj := IRObject{
		"structure_id": IRString(structureID),
		"label":        IRString(label),
		"batch":        IRString(batch),
	}

	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("SightingID: failed to marshal: %w", err)
	}

	return hashWithDomain(DomainSighting, canonical), nil
}
