package engine

// Step runs one frame of simulation: opponent tracking, then ball physics
// Rendering is left to the caller
func Step(s *State) {
	s.Events = 0
	s.Frame++
	UpdateOpponent(s)
	PhysicsStep(s)
}
