// Package physics implements a fixed-step 2D position-based particle solver.
//
// Each tick runs, in this exact order:
//
//	broadphase -> integrate -> solve_pos -> update_vel -> solve_vel -> sync
//
// Particles are circles owned by the host; the solver reads and writes their
// records through Store and never allocates or frees them.
package physics
