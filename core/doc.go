// Package core defines the domain contracts shared by every chatmesh
// component: conversation turns, the session store and audit log interfaces,
// the text-completion provider abstraction with its three-layer generation
// config resolution, and the error taxonomy consumed by the transport edge.
//
// Keeping the contracts here (and only implementations in the session,
// provider, audit, ... packages) prevents higher level packages from
// depending on concrete storage or vendor SDKs.
package core
