// Package hierarchy rebuilds the module/lesson tree of a project from the
// flat content rows the store returns.
//
// Lesson ownership is decided in a fixed order, first match wins:
//
//  1. the lesson's parent_content_id names a module of the project;
//  2. the title starts with "N." and there is an N-th module (1-based,
//     after sorting modules by sequence order);
//  3. otherwise the lesson goes to the synthetic orphan module.
//
// Nothing here touches the store; Reconstruct is a pure function of its
// input and is safe to call concurrently.
package hierarchy
