package noise

import "github.com/Aleod-m/PGE/math"

// Canonical lattice gradient directions. Entries are read as perm[i] % len, so the
// order is part of the output contract and must not change.
var gradients2D = [...]math.Vec2{
	{X: 0.130526192220052, Y: 0.99144486137381},
	{X: 0.38268343236509, Y: 0.923879532511287},
	{X: 0.608761429008721, Y: 0.793353340291235},
	{X: 0.793353340291235, Y: 0.608761429008721},
	{X: 0.923879532511287, Y: 0.38268343236509},
	{X: 0.99144486137381, Y: 0.130526192220051},
	{X: 0.99144486137381, Y: -0.130526192220051},
	{X: 0.923879532511287, Y: -0.38268343236509},
	{X: 0.793353340291235, Y: -0.60876142900872},
	{X: 0.608761429008721, Y: -0.793353340291235},
	{X: 0.38268343236509, Y: -0.923879532511287},
	{X: 0.130526192220052, Y: -0.99144486137381},
	{X: -0.130526192220052, Y: -0.99144486137381},
	{X: -0.38268343236509, Y: -0.923879532511287},
	{X: -0.608761429008721, Y: -0.793353340291235},
	{X: -0.793353340291235, Y: -0.608761429008721},
	{X: -0.923879532511287, Y: -0.38268343236509},
	{X: -0.99144486137381, Y: -0.130526192220052},
	{X: -0.99144486137381, Y: 0.130526192220051},
	{X: -0.923879532511287, Y: 0.38268343236509},
	{X: -0.793353340291235, Y: 0.608761429008721},
	{X: -0.608761429008721, Y: 0.793353340291235},
	{X: -0.38268343236509, Y: 0.923879532511287},
	{X: -0.130526192220052, Y: 0.99144486137381},
}

var gradients3D = [...]math.Vec3{
	{X: -1.4082482904633333, Y: -1.4082482904633333, Z: -2.6329931618533333},
	{X: -0.07491495712999985, Y: -0.07491495712999985, Z: -3.29965982852},
	{X: 0.24732126143473554, Y: -1.6667938651159684, Z: -2.838945207362466},
	{X: -1.6667938651159684, Y: 0.24732126143473554, Z: -2.838945207362466},
	{X: -1.4082482904633333, Y: -2.6329931618533333, Z: -1.4082482904633333},
	{X: -0.07491495712999985, Y: -3.29965982852, Z: -0.07491495712999985},
	{X: -1.6667938651159684, Y: -2.838945207362466, Z: 0.24732126143473554},
	{X: 0.24732126143473554, Y: -2.838945207362466, Z: -1.6667938651159684},
	{X: 1.5580782047233335, Y: 0.33333333333333337, Z: -2.8914115380566665},
	{X: 2.8914115380566665, Y: -0.33333333333333337, Z: -1.5580782047233335},
	{X: 1.8101897177633992, Y: -1.2760767510338025, Z: -2.4482280932803},
	{X: 2.4482280932803, Y: 1.2760767510338025, Z: -1.8101897177633992},
	{X: 1.5580782047233335, Y: -2.8914115380566665, Z: 0.33333333333333337},
	{X: 2.8914115380566665, Y: -1.5580782047233335, Z: -0.33333333333333337},
	{X: 2.4482280932803, Y: -1.8101897177633992, Z: 1.2760767510338025},
	{X: 1.8101897177633992, Y: -2.4482280932803, Z: -1.2760767510338025},
	{X: -2.6329931618533333, Y: -1.4082482904633333, Z: -1.4082482904633333},
	{X: -3.29965982852, Y: -0.07491495712999985, Z: -0.07491495712999985},
	{X: -2.838945207362466, Y: 0.24732126143473554, Z: -1.6667938651159684},
	{X: -2.838945207362466, Y: -1.6667938651159684, Z: 0.24732126143473554},
	{X: 0.33333333333333337, Y: 1.5580782047233335, Z: -2.8914115380566665},
	{X: -0.33333333333333337, Y: 2.8914115380566665, Z: -1.5580782047233335},
	{X: 1.2760767510338025, Y: 2.4482280932803, Z: -1.8101897177633992},
	{X: -1.2760767510338025, Y: 1.8101897177633992, Z: -2.4482280932803},
	{X: 0.33333333333333337, Y: -2.8914115380566665, Z: 1.5580782047233335},
	{X: -0.33333333333333337, Y: -1.5580782047233335, Z: 2.8914115380566665},
	{X: -1.2760767510338025, Y: -2.4482280932803, Z: 1.8101897177633992},
	{X: 1.2760767510338025, Y: -1.8101897177633992, Z: 2.4482280932803},
	{X: 3.29965982852, Y: 0.07491495712999985, Z: 0.07491495712999985},
	{X: 2.6329931618533333, Y: 1.4082482904633333, Z: 1.4082482904633333},
	{X: 2.838945207362466, Y: -0.24732126143473554, Z: 1.6667938651159684},
	{X: 2.838945207362466, Y: 1.6667938651159684, Z: -0.24732126143473554},
	{X: -2.8914115380566665, Y: 1.5580782047233335, Z: 0.33333333333333337},
	{X: -1.5580782047233335, Y: 2.8914115380566665, Z: -0.33333333333333337},
	{X: -2.4482280932803, Y: 1.8101897177633992, Z: -1.2760767510338025},
	{X: -1.8101897177633992, Y: 2.4482280932803, Z: 1.2760767510338025},
	{X: -2.8914115380566665, Y: 0.33333333333333337, Z: 1.5580782047233335},
	{X: -1.5580782047233335, Y: -0.33333333333333337, Z: 2.8914115380566665},
	{X: -1.8101897177633992, Y: 1.2760767510338025, Z: 2.4482280932803},
	{X: -2.4482280932803, Y: -1.2760767510338025, Z: 1.8101897177633992},
	{X: 0.07491495712999985, Y: 3.29965982852, Z: 0.07491495712999985},
	{X: 1.4082482904633333, Y: 2.6329931618533333, Z: 1.4082482904633333},
	{X: 1.6667938651159684, Y: 2.838945207362466, Z: -0.24732126143473554},
	{X: -0.24732126143473554, Y: 2.838945207362466, Z: 1.6667938651159684},
	{X: 0.07491495712999985, Y: 0.07491495712999985, Z: 3.29965982852},
	{X: 1.4082482904633333, Y: 1.4082482904633333, Z: 2.6329931618533333},
	{X: -0.24732126143473554, Y: 1.6667938651159684, Z: 2.838945207362466},
	{X: 1.6667938651159684, Y: -0.24732126143473554, Z: 2.838945207362466},
}
