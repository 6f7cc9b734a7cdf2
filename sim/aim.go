package sim

import "math"

// aimIterations bounds the intercept refinement
const aimIterations = 5

// PredictiveAim returns where a shot fired from shooter at projectileSpeed
// should be aimed to meet a target moving at targetVel. Speeds are per tick.
func PredictiveAim(shooter, target, targetVel Vec2, projectileSpeed float64) Vec2 {
	// If target is not moving, just return current position
	if math.Abs(targetVel.X) < 0.1 && math.Abs(targetVel.Y) < 0.1 {
		return target
	}

	distance := target.Sub(shooter).Len()
	if distance < 1.0 || projectileSpeed <= 0 {
		return target
	}

	// solve distance(shooter, target + targetVel*t) = projectileSpeed*t
	t := distance / projectileSpeed
	for i := 0; i < aimIterations; i++ {
		predicted := target.Add(targetVel.Scale(t))
		newT := predicted.Sub(shooter).Len() / projectileSpeed
		if math.Abs(newT-t) < 0.001 {
			break
		}
		t = newT
	}
	return target.Add(targetVel.Scale(t))
}

// aimDirection returns the unit vector from shooter to target; coincident
// points fall back to straight left
func aimDirection(shooter, target Vec2) Vec2 {
	dir := target.Sub(shooter).Normalize()
	if dir == (Vec2{}) {
		return Vec2{X: -1}
	}
	return dir
}
