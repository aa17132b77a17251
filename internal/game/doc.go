// Package game implements the deterministic Pong simulation: ball kinematics,
// paddle motion, collision resolution, AI tracking and round/score state.
//
// The simulation is frame-stepped and single-threaded. Each Match.Tick runs,
// in order: player paddle, computer paddle, ball integration, collision
// resolution (paddles before walls) and scoring. Side effects such as sounds
// and navigation are reported as Events; the package never plays audio or
// switches screens itself.
package game
