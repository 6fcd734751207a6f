// Package shading implements a Cook-Torrance BRDF and tone-mapping
// kernel as a CPU-side scalar evaluation of the usual GGX distribution,
// Schlick-Fresnel, and Smith-Schlick-GGX geometry terms.
package shading

import (
	"github.com/seui-engine/raytracing-csg-renderer/internal/color"
	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
	"github.com/seui-engine/raytracing-csg-renderer/internal/vecmath"
)

const minDot = 1e-5

// dielectricF0 is the base reflectance used for non-metallic surfaces.
const dielectricF0 = 0.04

// distributionGGX is the GGX normal distribution function.
func distributionGGX(nDotH, alpha scalar.S) scalar.S {
	nDotH = scalar.Clamp(nDotH, 0, 1)
	a2 := alpha * alpha
	d := nDotH*nDotH*(a2-1) + 1
	return a2 / (scalar.Pi() * d * d)
}

// fresnelSchlick is the Schlick approximation to Fresnel reflectance,
// evaluated per channel against F0.
func fresnelSchlick(cosTheta scalar.S, f0 color.LDR) color.LDR {
	cosTheta = scalar.Clamp(cosTheta, 0, 1)
	p := scalar.Pow(1-cosTheta, 5)
	return color.NewLDR(
		f0.R+(1-f0.R)*p,
		f0.G+(1-f0.G)*p,
		f0.B+(1-f0.B)*p,
	)
}

// geometrySchlickGGX is the single-direction Smith-Schlick-GGX
// visibility term.
func geometrySchlickGGX(cosine, k scalar.S) scalar.S {
	cosine = scalar.Max(cosine, minDot)
	return cosine / (cosine*(1-k) + k)
}

// geometrySmith combines the view and light visibility terms.
func geometrySmith(nDotV, nDotL, roughness scalar.S) scalar.S {
	k := (roughness + 1) * (roughness + 1) / 8
	return geometrySchlickGGX(nDotV, k) * geometrySchlickGGX(nDotL, k)
}

// BRDF evaluates the Cook-Torrance reflectance for a single light
// sample and returns its contribution to outgoing
// radiance: view and light are unit surface-to-view/surface-to-light
// directions, normal is the surface normal, and lightColor is the
// already-attenuated incoming radiance.
func BRDF(view, light, normal vecmath.Direction, roughness, metallic scalar.S, albedo color.LDR, lightColor color.HDR) color.HDR {
	rawNDotL := normal.Dot(light)
	if rawNDotL <= 0 {
		return color.Black
	}
	nDotV := scalar.Max(normal.Dot(view), minDot)
	nDotL := scalar.Max(rawNDotL, minDot)

	h := view.Scale(1).Add(light.Scale(1)).ToDirection()
	nDotH := normal.Dot(h)
	hDotV := h.Dot(view)

	alpha := roughness * roughness
	f0 := color.NewLDR(
		albedo.R*metallic+dielectricF0*(1-metallic),
		albedo.G*metallic+dielectricF0*(1-metallic),
		albedo.B*metallic+dielectricF0*(1-metallic),
	)

	d := distributionGGX(nDotH, alpha)
	f := fresnelSchlick(hDotV, f0)
	g := geometrySmith(nDotV, nDotL, roughness)

	specDenom := 4 * nDotV * nDotL
	spec := color.HDR{
		R: d * f.R * g / specDenom,
		G: d * f.G * g / specDenom,
		B: d * f.B * g / specDenom,
	}

	fDiffuse := fresnelSchlick(scalar.Max(nDotL, 0), f0)
	kd := 1 - metallic
	diffuseScale := kd * scalar.Max(nDotL, 0) / scalar.Pi()
	diffuse := color.HDR{
		R: (1 - fDiffuse.R) * diffuseScale * albedo.R,
		G: (1 - fDiffuse.G) * diffuseScale * albedo.G,
		B: (1 - fDiffuse.B) * diffuseScale * albedo.B,
	}

	return diffuse.Add(spec).Mul(lightColor)
}
