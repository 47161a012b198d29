// Package fluid implements a 2D incompressible smoke solver after Jos
// Stam's "Real-Time Fluid Dynamics for Games" (2003).
//
// The simulation lives on a fixed square grid of N×N interior cells
// surrounded by a one-cell ghost border used to enforce solid-wall
// boundary conditions. Each step runs four stages: source addition,
// diffusion (implicit, via Gauss-Seidel relaxation), semi-Lagrangian
// advection, and a pressure projection that keeps the velocity field
// approximately divergence-free. Diffusion and projection are
// unconditionally stable, so the solver tolerates large timesteps at the
// cost of numerical dissipation.
//
// A Fluid owns all of its grids. Callers inject forces and smoke into the
// source buffers with AddForce, AddDensity or SetSources, then advance the
// simulation with Step (or VelStep/DensStep individually). Source buffers
// are consumed additively every step and are not cleared automatically;
// call ClearSources between steps for one-shot impulses.
package fluid
