// Package device assembles complete HEMT structures.
//
// A [Structure] combines a [Substrate], lateral [Dimensions], a
// [stack.LayerStack] and a [stack.ContactSet]. [NewDefault] builds the
// reference InGaN/GaN HEMT:
//
//	Cap         GaN      2 nm     n 2e19
//	Barrier     InAlN    15 nm    n 5e18 (In 0.17, Al 0.83)
//	Spacer      AlN      1 nm
//	Channel     GaN      300 nm   background 1e16
//	Buffer2     GaN      1500 nm  n 1e16
//	Buffer1     AlGaN    500 nm   (Al 0.1, Ga 0.9)
//	Nucleation  AlN      100 nm   (not on GaN substrates)
//	Substrate   SiC/Si/Sapphire/GaN
//
// Optional features are added by composition rather than by a derived
// type: [Structure.AddBackBarrier] splices a layer into the stack, while
// field plates and passivation films live in the [Extensions] record.
//
// [stack.LayerStack]: github.com/matzehuels/epistack/pkg/stack.LayerStack
// [stack.ContactSet]: github.com/matzehuels/epistack/pkg/stack.ContactSet
package device
