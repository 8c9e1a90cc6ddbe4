package scene

// DefaultDescription is the classic four-sphere scene: a large diffuse ground,
// a diffuse center sphere and two metal spheres either side of it
func DefaultDescription() Description {
	return Description{
		Name:    "default",
		Width:   400,
		Height:  200,
		Samples: 100,
		Materials: map[string]MaterialSpec{
			"ground": {Kind: KindLambertian, Albedo: Triple{0.8, 0.8, 0.0}},
			"center": {Kind: KindLambertian, Albedo: Triple{0.8, 0.3, 0.3}},
			"gold":   {Kind: KindMetal, Albedo: Triple{0.8, 0.6, 0.2}},
			"silver": {Kind: KindMetal, Albedo: Triple{0.8, 0.8, 0.8}},
		},
		Spheres: []SphereSpec{
			{Center: Triple{0, 0, -1}, Radius: 0.5, Material: "center"},
			{Center: Triple{0, -100.5, -1}, Radius: 100, Material: "ground"},
			{Center: Triple{1, 0, -1}, Radius: 0.5, Material: "gold"},
			{Center: Triple{-1, 0, -1}, Radius: 0.5, Material: "silver"},
		},
	}
}

// DiffuseDescription is a single reddish diffuse sphere resting on a diffuse ground sphere
func DiffuseDescription() Description {
	return Description{
		Name:    "diffuse",
		Width:   200,
		Height:  100,
		Samples: 100,
		Materials: map[string]MaterialSpec{
			"ground": {Kind: KindLambertian, Albedo: Triple{0.8, 0.8, 0.0}},
			"red":    {Kind: KindLambertian, Albedo: Triple{0.8, 0.3, 0.3}},
		},
		Spheres: []SphereSpec{
			{Center: Triple{0, 0, -1}, Radius: 0.5, Material: "red"},
			{Center: Triple{0, -100.5, -1}, Radius: 100, Material: "ground"},
		},
	}
}

// NewDefaultScene creates the default scene
func NewDefaultScene() *Scene {
	return mustBuild(DefaultDescription())
}

// NewDiffuseScene creates the two-sphere diffuse scene
func NewDiffuseScene() *Scene {
	return mustBuild(DiffuseDescription())
}

// mustBuild is for descriptions defined in code, which are known to be valid
func mustBuild(d Description) *Scene {
	s, err := d.Build()
	if err != nil {
		panic(err)
	}
	return s
}
