package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with dxfclean",
		Content: topicQuickstart,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "Config file keys, defaults, and CLI overrides",
		Content: topicConfig,
	},
	{
		Name:    "pipeline",
		Title:   "Cleaning Pipeline",
		Summary: "What is kept, what is dropped, and how the file is rebuilt",
		Content: topicPipeline,
	},
	{
		Name:    "templates",
		Title:   "Header and Footer Templates",
		Summary: "Template files, the LAYER insertion point, and fallbacks",
		Content: topicTemplates,
	},
	{
		Name:    "handles",
		Title:   "Handles",
		Summary: "How layer and entity handles are assigned",
		Content: topicHandles,
	},
	{
		Name:    "output",
		Title:   "Output, Reports and Metrics",
		Summary: "Output naming, the JSON report, and the metrics textfile",
		Content: topicOutput,
	},
}

const topicQuickstart = `Quick Start
===========

1. Scaffold a config and editable templates:

    cd your-drawings
    dxfclean init

   This creates .dxfclean.yaml and templates/ with the built-in header
   and footer.

2. Look at what a drawing contains:

    dxfclean inspect plan.dxf

3. Clean it:

    dxfclean clean plan.dxf

   The result is written to Output/plan_cleaned.dxf.

CLI
---

  dxfclean clean <file.dxf>            Clean one drawing
  dxfclean clean --report <file>       Also write a JSON run report
  dxfclean clean --types LINE,ARC <file>
                                       Override the kept entity types
  dxfclean inspect <file.dxf>          Print layers and entity counts
  dxfclean init                        Scaffold config and templates
  dxfclean docs                        List documentation topics
  dxfclean docs <topic>                Show a documentation topic

Exit status is 1 when cleaning fails.
`

const topicConfig = `Configuration Reference
=======================

dxfclean reads .dxfclean.yaml from the working directory when present,
or the file given with --config. Every key is optional.

  entity-types      Entity kinds copied to the output.
                    Default: [LINE, CIRCLE, ARC]. Names are upper-cased.
                    SECTION, ENDSEC, TABLE, ENDTAB and EOF are rejected.
  handle-base       First hex handle given to entities without one.
                    Default: "32".
  output-dir        Directory for cleaned drawings. Default: Output
  suffix            Appended to the input stem. Default: _cleaned.dxf
  extension         Required input extension, any case. Default: .dxf
  template-dir      Directory holding the templates. Relative paths are
                    resolved against the config file. Default: the
                    directory of the dxfclean executable.
  header-template   Default: dxf_header_header.txt
  footer-template   Default: dxf_footer.txt
  report            Write <output>.report.json. Default: false
  metrics-file      Write Prometheus metrics to this textfile.
  log-level         debug, info, warn or error. Default: info
  log-format        console or json. Default: console
  log-file          Write logs to this file. Default: stderr

Command-line flags override the file:

  --config, --out-dir, --suffix, --template-dir, --header, --footer,
  --handle-base, --types, --report, --metrics-file, --log-level,
  --log-format, --log-file
`

const topicPipeline = `Cleaning Pipeline
=================

A DXF file is a sequence of (group code, value) line pairs. dxfclean
reads it once, front to back:

  TABLES / LAYER     Each LAYER record is kept: its name plus every
                     property except handle (5), owner (330), subclass
                     (100) and flags (70), which are regenerated.
                     A record without a name is dropped. A later record
                     with the same name replaces the earlier one.
  ENTITIES           Entities whose kind is in entity-types are kept
                     with their properties in original order. All other
                     entities are counted as skipped.
  everything else    Discarded: HEADER variables, other tables, BLOCKS,
                     OBJECTS, and unknown sections.

Layer 0 is always present in the output, and always first.

The output is rebuilt as:

  header template (up to the LAYER table)
  LAYER table with the kept layers
  fixed STYLE, VIEW, UCS, APPID, DIMSTYLE and BLOCK_RECORD tables,
  the model and paper space blocks, and the ENTITIES section opening
  kept entities
  footer template

Malformed input never aborts a run. Parsing is best effort and a file
with no recognisable structure yields an empty drawing.
`

const topicTemplates = `Header and Footer Templates
===========================

The header template is everything up to and including the opening of the
LAYER table. It must contain the line sequence

    TABLE
    2
    LAYER

exactly once. dxfclean writes the table's handle, owner, subclass and
layer count right after it, then the layer records.

When the sequence is missing or repeated the header is written unchanged
and a header-format-mismatch warning is reported. The layer count of the
built-in header is still patched in that case.

The footer template closes the ENTITIES section and the file. It follows
a single "0" line.

When a template file cannot be read the built-in one is used and a
template-missing warning is reported. The run still succeeds.

Run 'dxfclean init' to get the built-in templates as editable files.
`

const topicHandles = `Handles
=======

Every record in the output carries a handle (group code 5).

Layers get a handle derived from their name: an FNV-1a hash of the name
modulo 1000, offset by 0x400. The same name always gets the same handle.
When two layers collide, the later one takes the next free value.

Entities keep their original handle. Entities without one are numbered
upward from handle-base (0x32 by default), skipping any value already
used by the templates, the fixed tables, a layer or another entity.
`

const topicOutput = `Output, Reports and Metrics
===========================

The cleaned drawing is written to <output-dir>/<stem><suffix>. The
directory is created when missing. The file is written to a temporary
name and renamed, so a failed run never leaves a partial drawing.

With --report (or report: true) a JSON report is written next to the
drawing as <output>.report.json:

  run_id               Unique id, also present in every log line
  input, output        Paths
  status               completed or failed
  layers, entities     Counts written
  synthesized_handles  Entities that were given a new handle
  skipped              Dropped entity kinds and their counts
  warnings             Template and header problems
  start, end, duration Timing

With --metrics-file PATH the run's Prometheus counters are written in
text exposition format, ready for the node exporter textfile collector:

  dxfclean_runs_total{status}
  dxfclean_layers_written_total
  dxfclean_entities_written_total{kind}
  dxfclean_entities_skipped_total{kind}
  dxfclean_handles_generated_total
  dxfclean_warnings_total{kind}
  dxfclean_output_bytes_total
  dxfclean_run_duration_seconds
`
