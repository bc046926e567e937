package toothgeom

// Molar outlines. The occlusal view is traced from artwork drawn on a
// 670×708 board; the frontal view uses simple blocks along the bottom edge.

var molarTop = func() *Generator {
	g := &Generator{
		Name:  "molar/top",
		Frame: FrameMolarTop,
		Recipes: map[Surface]Recipe{
			// Central fissure pattern.
			SurfaceOcclusal: {pathData("M136.5 243.014C136.5 243.014 199.473 280.71 271 300.014C294.521 306.362 315.208 270.05 338.5 269.514C354.933 269.136 390.478 304.115 407 300.014C479.017 282.139 530.5 243.014 530.5 243.014C530.5 243.014 450.567 303.558 449.491 348.014C448.379 393.914 530.5 457.014 530.5 457.014C530.5 457.014 470.572 433.384 407 420.743C385.243 416.417 358.854 450.378 338.5 450.014C319.497 449.674 296.092 417.517 275.5 420.743C202.39 432.195 136.5 457.014 136.5 457.014C136.5 457.014 219.552 393.988 218.43 348.014C217.343 303.482 136.5 243.014 136.5 243.014Z")},
			// Right petal.
			SurfaceDistal: {pathData("M457 349.514C457 311.228 503.344 276.545 531 251.338C558.997 225.82 591.413 158.514 608.5 158.514C642.466 158.514 670 272.47 670 349.514C670 426.557 642.466 531.514 608.5 531.514C591.413 531.514 558.997 473.207 531 447.689C503.344 422.482 457 387.799 457 349.514Z")},
			// Left petal.
			SurfaceMesial: {pathData("M213 349.014C213 387.299 166.656 421.982 139 447.189C111.003 472.707 78.587 540.014 61.5 540.014C27.5345 540.014 0 426.057 0 349.014C0 271.97 27.5345 167.014 61.5 167.014C78.587 167.014 111.003 225.32 139 250.838C166.656 276.045 213 310.728 213 349.014Z")},
			SurfaceMesioBuccalCusp:  {pathData("M343.5 9.51373C368.3 28.0248 317.169 119.466 326 165.514C332.087 197.252 346.971 218.515 343.5 243.014C339.47 271.461 312.031 272.764 305.5 281.514C285.183 308.733 204.241 281.098 142.5 235.014C80.7591 188.929 55.1832 152.733 75.5 125.514C95.8168 98.2946 281.759 -36.5708 343.5 9.51373Z")},
			SurfaceMesioPalatalCusp: {pathData("M367 689.014C353 651.014 337.67 590.782 341 544.014C343.295 511.779 351.84 493.93 345.5 470.014C333.5 447.514 305.019 441.431 297.5 433.514C274.11 408.885 210 439.014 132.5 465.014C76.6345 518.068 52.9134 593.579 76.303 618.208C99.6926 642.837 383.5 749.014 367 689.014Z")},
			SurfaceDistoBuccalCusp:  {pathData("M588 155.514C570.647 229.792 428.576 296.24 395.501 288.513C362.426 280.787 318.771 179.901 336.124 105.623C353.477 31.345 386.925 8.78685 420 16.5137C453.075 24.2406 605.353 81.2359 588 155.514Z")},
			SurfaceDistoPalatalCusp: {pathData("M376.333 672.841C324.753 616.646 349.928 461.837 374.95 438.869C399.973 415.901 507.914 436.695 559.494 492.889C611.074 549.084 610.858 589.428 585.835 612.396C560.813 635.363 427.912 729.036 376.333 672.841Z")},
			// The whole occlusal table, approximated.
			SurfaceWhole: {roundedRect(60, 100, 550, 500, 50)},
		},
	}
	g.alias(SurfaceMesioBuccalCusp, SurfaceBuccalCusp)
	g.alias(SurfaceMesioPalatalCusp, SurfacePalatalCusp)
	g.alias(SurfaceWhole, SurfaceBuccal, SurfacePalatal)
	g.Order = []Surface{
		SurfaceWhole,
		SurfaceOcclusal,
		SurfaceMesial,
		SurfaceDistal,
		SurfaceMesioBuccalCusp,
		SurfaceDistoBuccalCusp,
		SurfaceMesioPalatalCusp,
		SurfaceDistoPalatalCusp,
	}
	return g
}()

var molarFrontal = func() *Generator {
	g := &Generator{
		Name:  "molar/frontal",
		Frame: FrameFrontal,
		Recipes: map[Surface]Recipe{
			// Cusps split the bottom 60 units in half.
			SurfaceMesioBuccalCusp: {roundedRect(0, 172-60, 27, 60, 4)},
			SurfaceDistoBuccalCusp: {roundedRect(27, 172-60, 27, 60, 4)},
			SurfaceMesial:          {roundedRect(0, 172-35, 14, 35, 4)},
			SurfaceDistal:          {roundedRect(40, 172-35, 14, 35, 4)},
			SurfaceBuccalPoint:     {circle(27, 172-25, 5)},
			SurfaceCervical:        cervicalBand,
			SurfaceWhole:           {roundedRect(0, 172-60, 54, 60, 4)},
		},
	}
	g.alias(SurfaceMesioBuccalCusp, SurfaceBuccalCusp)
	g.alias(SurfaceBuccalPoint, SurfaceBuccal, SurfacePalatal)
	g.alias(SurfaceCervical, SurfaceCervicalBuccal, SurfaceCervicalPalatal)
	g.Order = []Surface{
		SurfaceWhole,
		SurfaceMesioBuccalCusp,
		SurfaceDistoBuccalCusp,
		SurfaceMesial,
		SurfaceDistal,
		SurfaceCervical,
		SurfaceBuccalPoint,
	}
	return g
}()
