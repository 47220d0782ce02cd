/*
Package domain contains the core domain models for the appguide workflow.

It defines the fundamental entities of the five-phase guided workflow: the immutable
phase descriptors owned by the registry, the derived progress summaries, and the
records handed to progress recorders. This package is kept pure and free of I/O.

# Key Entities

  - PhaseDescriptor: A registered phase (index, title, folder, guide, progress detector).
  - ProgressDetector: A pure strategy deciding whether a phase folder shows prior work.
  - ProgressSummary: The derived per-phase view (title, guide heading, progress flag).
  - CompletionRecord: A human-readable completion entry for an external progress log.
*/
package domain
