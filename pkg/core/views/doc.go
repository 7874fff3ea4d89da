// Package views assembles the output records of figscope from a [Snapshot].
//
// There are five independent views:
//
//   - [StructureView]: the pruned, appearance-free document tree
//   - [InteractionView]: prototype edges and flow entry points
//   - [MetadataView]: components, component sets, scoped node properties
//   - [VariablesView]: local variables and collections
//   - [CommentView]: file comments
//
// Each Build function is pure and reads the snapshot without modifying it.
// [Assemble] joins the results into the combined [Full] record:
//
//	snap := &views.Snapshot{Name: &name, Document: doc}
//	full := views.Assemble(
//	    views.BuildStructure(snap, 3),
//	    views.BuildInteractions(snap),
//	    views.BuildMetadata(snap),
//	    views.BuildVariables(snap),
//	    views.BuildComments(snap),
//	)
//
// Every view marshals to plain JSON. Collections are always emitted as
// empty objects or arrays rather than null, except NodeProperties which is
// omitted entirely when the run was not scoped.
package views
