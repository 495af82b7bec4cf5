/*	Package iterators provide iterator implementations.



	Summary

	An iterator goal is to decouple the facts about the origin of the data,
	to the consumer who use the data.
	Most common scenario is to hide the fact if data is from a certain DB, STDIN or from somewhere else.
	This helps to design data consumers that doesn't rely on the data source concrete implementation,
	while still able to do composition and different kind of actions on the received data stream.
	An Iterator represent multiple data that can be 0 and infinite.

	The package ships two families of operations on top of the iterator contract.

	Eager operations (Prefix, DropFirst, DropLast, DropWhile, PrefixWhile, Suffix, Split)
	consume their input and hand back a fully materialized slice.
	After they return, the result no longer depends on the source in any way.

	Lazy operations (LazyPrefix, LazyDropFirst, Filter, Map, Enumerate)
	wrap the source and defer all work until the consumer pulls the next value.
	Constructing them costs O(1) and consumes nothing,
	so they compose with each other and with unbounded sources
	without ever allocating an intermediate container.

	Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
	Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
	Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder



	Resources

	https://en.wikipedia.org/wiki/Iterator_pattern
	https://en.wikipedia.org/wiki/Pipeline_(software)

*/
package iterators
