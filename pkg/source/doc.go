// Package source discovers C and C++ translation units on disk.
//
// # Categories
//
// Every recognized file belongs to exactly one [Category]. A category names a
// set of extensions together with the color and line style its nodes and
// edges are drawn with. [DefaultCategories] returns the two the tool ships
// with:
//
//	header: .h .hpp        black      solid
//	source: .c .cc .cpp    goldenrod  dashed
//
// # Discovery
//
// [Discover] walks a directory tree depth-first and returns every file whose
// extension belongs to a category. Directories whose name is listed in
// [Options.Exclude] are pruned at any depth. When [Options.Gitignore] is set,
// paths matched by the root .gitignore are skipped too.
package source
