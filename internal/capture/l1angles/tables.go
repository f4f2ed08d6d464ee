package l1angles

// Bucket geometry. Theta covers the full horizontal ring in 24 buckets of
// 15°; phi covers elevation -90°..+90° in 12 buckets of 15°.
const (
	ThetaBuckets  = 24
	PhiBuckets    = 12
	BucketDegrees = 15.0
)

// Exact-decimal literals for sin/cos at multiples of 15°. These are the
// correctly rounded float64 values; writing them as source literals (rather
// than calling math.Sin at init) pins the classification tables to
// bit-identical values on every platform and compiler.
const (
	sin15 = 0.25881904510252074
	sin30 = 0.5
	sin45 = 0.7071067811865476
	sin60 = 0.8660254037844386
	sin75 = 0.9659258262890683
)

// phiBoundaries holds sin(-90° + 15°k) for k = 0..12. ClassifyPhi binary
// searches this table; it must be strictly increasing.
var phiBoundaries = [PhiBuckets + 1]float64{
	-1,     // sin(-90°)
	-sin75, // sin(-75°)
	-sin60, // sin(-60°)
	-sin45, // sin(-45°)
	-sin30, // sin(-30°)
	-sin15, // sin(-15°)
	0,      // sin(0°)
	sin15,  // sin(15°)
	sin30,  // sin(30°)
	sin45,  // sin(45°)
	sin60,  // sin(60°)
	sin75,  // sin(75°)
	1,      // sin(90°)
}

// thetaVectors holds the unit vector (cos(15°k), sin(15°k)) for each theta
// bucket center k = 0..23. ClassifyTheta arg-maxes the dot product against
// this table.
var thetaVectors = [ThetaBuckets][2]float64{
	{1, 0},           // 0°
	{sin75, sin15},   // 15°
	{sin60, sin30},   // 30°
	{sin45, sin45},   // 45°
	{sin30, sin60},   // 60°
	{sin15, sin75},   // 75°
	{0, 1},           // 90°
	{-sin15, sin75},  // 105°
	{-sin30, sin60},  // 120°
	{-sin45, sin45},  // 135°
	{-sin60, sin30},  // 150°
	{-sin75, sin15},  // 165°
	{-1, 0},          // 180°
	{-sin75, -sin15}, // 195°
	{-sin60, -sin30}, // 210°
	{-sin45, -sin45}, // 225°
	{-sin30, -sin60}, // 240°
	{-sin15, -sin75}, // 255°
	{0, -1},          // 270°
	{sin15, -sin75},  // 285°
	{sin30, -sin60},  // 300°
	{sin45, -sin45},  // 315°
	{sin60, -sin30},  // 330°
	{sin75, -sin15},  // 345°
}
