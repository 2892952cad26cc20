package storefront

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// VariantListingBehavior comportamiento de selección de variante según la versión de la plataforma.
type VariantListingBehavior int

const (
	// BehaviorPassthrough plataforma anterior a la sustitución de variantes: el producto se muestra tal cual.
	BehaviorPassthrough VariantListingBehavior = iota
	// BehaviorLegacyGroupConfig la configuración del configurador vive en el padre y se sustituye por el padre.
	BehaviorLegacyGroupConfig
	// BehaviorListingConfig la configuración vive en variantListingConfig y se sustituye por la primera variante.
	BehaviorListingConfig
)

func (b VariantListingBehavior) String() string {
	switch b {
	case BehaviorPassthrough:
		return "passthrough"
	case BehaviorLegacyGroupConfig:
		return "legacy-group-config"
	case BehaviorListingConfig:
		return "listing-config"
	default:
		return fmt.Sprintf("behavior(%d)", int(b))
	}
}

// VersionGate expone los gates de versión de la plataforma.
type VersionGate interface {
	VariantListingBehavior() VariantListingBehavior
}

// SemverGate compara la versión declarada contra dos umbrales.
type SemverGate struct {
	platform         string
	listingMin       string
	listingConfigMin string
}

// NewSemverGate valida las tres versiones (formato 6.5.0, 6.4.15.0, v6.5.0-rc1...).
func NewSemverGate(platform, listingMin, listingConfigMin string) (*SemverGate, error) {
	p := &SemverGate{}
	for _, f := range []struct {
		name string
		in   string
		out  *string
	}{
		{"platform", platform, &p.platform},
		{"variant listing", listingMin, &p.listingMin},
		{"listing config", listingConfigMin, &p.listingConfigMin},
	} {
		v, err := CanonicalVersion(f.in)
		if err != nil {
			return nil, fmt.Errorf("versión %s: %w", f.name, err)
		}
		*f.out = v
	}
	return p, nil
}

// VariantListingBehavior selecciona el comportamiento una vez por gate.
func (p *SemverGate) VariantListingBehavior() VariantListingBehavior {
	if semver.Compare(p.platform, p.listingMin) < 0 {
		return BehaviorPassthrough
	}
	if semver.Compare(p.platform, p.listingConfigMin) >= 0 {
		return BehaviorListingConfig
	}
	return BehaviorLegacyGroupConfig
}

// CanonicalVersion lleva una versión de plataforma a semver con prefijo "v".
// Los componentes más allá de major.minor.patch (6.4.15.0) se descartan.
func CanonicalVersion(version string) (string, error) {
	v := strings.TrimPrefix(strings.TrimSpace(version), "v")
	if v == "" {
		return "", fmt.Errorf("versión vacía")
	}
	core, suffix := v, ""
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		core, suffix = v[:i], v[i:]
	}
	parts := strings.Split(core, ".")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	for len(parts) < 3 {
		parts = append(parts, "0")
	}
	out := "v" + strings.Join(parts, ".") + suffix
	if !semver.IsValid(out) {
		return "", fmt.Errorf("versión inválida %q", version)
	}
	return out, nil
}

// FixedBehavior VersionGate de valor fijo.
type FixedBehavior VariantListingBehavior

// VariantListingBehavior implementa VersionGate.
func (f FixedBehavior) VariantListingBehavior() VariantListingBehavior {
	return VariantListingBehavior(f)
}
