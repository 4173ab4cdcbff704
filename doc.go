// Package orchestrator manages the distros of the Windows Subsystem for Linux:
// it reads their inventory, starts, terminates and shuts them down, and renames
// them safely. It drives wsl.exe and reads the Lxss registry.
//
// This package also contains a mock WSL backend which can be useful for testing,
// as setting up WSL distros for every test-case can be quite time-consuming. The
// mock back-end is disabled by default, and can be enabled by using the context
// returned by the WithMock function.
package orchestrator
