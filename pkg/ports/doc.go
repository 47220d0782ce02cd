/*
Package ports defines the driven ports (interfaces) for the appguide core.

These interfaces decouple the conversation engine from external collaborators, so the
core can notify a progress log without knowing where or how it is stored.

# Key Interfaces

  - ProgressRecorder: Receives completion records after a full phase traversal.
  - ProgressLog: A recorder that can also list what it has recorded.
*/
package ports
