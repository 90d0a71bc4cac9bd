// Package notation renders a value tree as its notation: a tagged text
// encoding in which the order of array elements and object entries does not
// matter.
//
// Each kind of value is written with a trailing tag:
//
//	null          _
//	true, false   trueB, falseB
//	number        <literal>N     1N, 1.2N
//	string        <content>S     abcS
//	array         <children>A    1N2N3NA
//	object        <pairs>H       1NaSAH
//
// Before the children of an array are written they are put in canonical
// order with canon.Sort, at every depth. An object is written as its
// canonical [key, value] pairs, each pair going through the array rule
// above. This means the two halves of a pair are sorted like any other array
// elements, so a value whose ordering key sorts before its key is written
// first: {"a": 1} is 1NaSAH.
package notation
