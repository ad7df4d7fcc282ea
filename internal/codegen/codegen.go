// codegen creates the DST nodes that instrumentation inserts into user code, and decides how
// they are spaced and commented relative to the code around them. Any function that builds a
// node for insertion into the tree belongs here. Functions in this package follow two rules:
//
// 1. Nodes taken as input are cloned before they become part of an output. A node that appears
// twice in a tree makes the restorer panic.
// 2. Generated identifiers carry the import path of the package they belong to, and never a
// package name. The restorer picks the name and adds the import when the file is printed.
package codegen
