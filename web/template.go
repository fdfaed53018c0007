// web/template.go
package web

// DashboardHTML is the single dashboard page. All interactivity is plain
// form controls: changing any control rebuilds the filter query string,
// re-requests the chart images and refreshes the summary JSON.
const DashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Solar Activity Dashboard</title>
<style>
:root {
  --bg: #FFF8F0; --fg: #2C3E50; --card-bg: #FFFFFF; --border: #E9ECEF;
  --muted: #6C757D; --primary: #FF6B35; --secondary: #F7931E;
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; max-width: 1400px; margin: 0 auto; }
header { margin-bottom: 1rem; }
header h1 { font-size: 1.5rem; color: var(--primary); margin-bottom: .25rem; }
header p { color: var(--muted); font-size: .875rem; }
.layout { display: grid; grid-template-columns: 260px 1fr; gap: 1rem; }
@media (max-width: 900px) { .layout { grid-template-columns: 1fr; } }
.panel { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; align-self: start; }
.panel h3 { font-size: .8125rem; text-transform: uppercase; color: var(--primary); margin: .75rem 0 .375rem; }
.panel h3:first-child { margin-top: 0; }
.panel label { display: block; font-size: .8125rem; margin: .125rem 0; }
.panel input[type=date], .panel input[type=number], .panel select { width: 100%; padding: .3rem .4rem; border: 1px solid var(--border); border-radius: 4px; font-size: .8125rem; margin-bottom: .25rem; }
.summary { font-size: .8125rem; color: var(--muted); margin-top: .75rem; border-top: 1px solid var(--border); padding-top: .5rem; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(130px, 1fr)); gap: .75rem; margin-bottom: 1rem; }
.card { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: .75rem; text-align: center; }
.card .value { font-size: 1.4rem; font-weight: 700; color: var(--primary); }
.card .label { font-size: .7rem; color: var(--muted); text-transform: uppercase; }
.charts { display: grid; grid-template-columns: 1fr; gap: 1rem; }
.chart-row { display: grid; grid-template-columns: repeat(auto-fit, minmax(300px, 1fr)); gap: 1rem; }
.chart-box { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: .75rem; text-align: center; }
.chart-box img { max-width: 100%; height: auto; }
</style>
</head>
<body>
<header>
  <h1>Solar Activity Dashboard</h1>
  <p>Solar flare observations and monthly sunspot numbers, filterable by date, flare class, cycle phase, magnetic complexity and sunspot count.</p>
</header>
<div class="layout">
  <aside class="panel">
    <h3>Date Range</h3>
    <label>From <input type="date" id="start"></label>
    <label>To <input type="date" id="end"></label>
    <h3>Flare Classes</h3>
    <label><input type="checkbox" class="cls" value="X" checked> X-Class</label>
    <label><input type="checkbox" class="cls" value="M" checked> M-Class</label>
    <label><input type="checkbox" class="cls" value="C" checked> C-Class</label>
    <h3>Cycle Phase</h3>
    <div id="phases"></div>
    <h3>Magnetic Complexity</h3>
    <div id="complexity"></div>
    <h3>Sunspot Count</h3>
    <label>Min <input type="number" id="sunspot_min"></label>
    <label>Max <input type="number" id="sunspot_max"></label>
    <h3>Flare Status</h3>
    <select id="flare_occurred">
      <option value="any">All days</option>
      <option value="yes">Flares occurred</option>
      <option value="no">No flares</option>
    </select>
    <div class="summary" id="filter-summary">Loading…</div>
  </aside>
  <main>
    <div class="cards" id="cards"></div>
    <div class="charts">
      <div class="chart-box"><img id="chart-sunspot-timeline" alt="Sunspot activity timeline"></div>
      <div class="chart-box"><img id="chart-flare-activity" alt="Flare activity"></div>
      <div class="chart-row">
        <div class="chart-box"><img id="chart-flare-distribution" alt="Flare class distribution"></div>
        <div class="chart-box"><img id="chart-cycle-phase" alt="Solar cycle phases"></div>
        <div class="chart-box"><img id="chart-magnetic-complexity" alt="Magnetic complexity"></div>
      </div>
    </div>
  </main>
</div>
<script>
const chartNames = ["sunspot-timeline", "flare-activity", "flare-distribution", "cycle-phase", "magnetic-complexity"];
const cardDefs = [
  ["total_flares", "Total Flares"],
  ["x_class_flares", "X-Class Flares"],
  ["avg_sunspots", "Avg Sunspots"],
  ["max_flare_index", "Max Flare Index"],
  ["active_regions", "Active Regions"],
  ["avg_solar_flux", "Avg Solar Flux"],
];

function checkedValues(cls) {
  return Array.from(document.querySelectorAll("input." + cls + ":checked")).map(el => el.value);
}

function buildQuery() {
  const p = new URLSearchParams();
  const start = document.getElementById("start").value;
  const end = document.getElementById("end").value;
  if (start) p.set("start", start);
  if (end) p.set("end", end);
  p.set("classes", checkedValues("cls").join(","));
  const phases = checkedValues("phase");
  if (phases.length) p.set("phases", phases.join(","));
  const complexity = checkedValues("cpx");
  if (complexity.length) p.set("complexity", complexity.join(","));
  const lo = document.getElementById("sunspot_min").value;
  const hi = document.getElementById("sunspot_max").value;
  if (lo !== "") p.set("sunspot_min", lo);
  if (hi !== "") p.set("sunspot_max", hi);
  const occurred = document.getElementById("flare_occurred").value;
  if (occurred !== "any") p.set("flare_occurred", occurred);
  return p.toString();
}

function fmt(v) {
  return Number.isInteger(v) ? v.toLocaleString() : v.toFixed(1);
}

async function refresh() {
  const q = buildQuery();
  for (const name of chartNames) {
    document.getElementById("chart-" + name).src = "/charts/" + name + ".png?" + q;
  }
  const res = await fetch("/api/summary?" + q);
  if (!res.ok) return;
  const summary = await res.json();
  const cards = document.getElementById("cards");
  cards.innerHTML = "";
  for (const [key, label] of cardDefs) {
    const div = document.createElement("div");
    div.className = "card";
    div.innerHTML = '<div class="value">' + fmt(summary[key]) + '</div><div class="label">' + label + '</div>';
    cards.appendChild(div);
  }
  document.getElementById("filter-summary").textContent = summary.filter_summary;
}

function addChecklist(containerID, cls, labels) {
  const container = document.getElementById(containerID);
  for (const value of labels) {
    const label = document.createElement("label");
    const box = document.createElement("input");
    box.type = "checkbox";
    box.className = cls;
    box.value = value;
    box.checked = true;
    box.addEventListener("change", refresh);
    label.appendChild(box);
    label.appendChild(document.createTextNode(" " + value));
    container.appendChild(label);
  }
}

async function init() {
  const res = await fetch("/api/meta");
  const meta = await res.json();
  document.getElementById("start").value = meta.min_date;
  document.getElementById("end").value = meta.max_date;
  document.getElementById("sunspot_min").value = meta.sunspot_min;
  document.getElementById("sunspot_max").value = meta.sunspot_max;
  addChecklist("phases", "phase", meta.cycle_phases);
  addChecklist("complexity", "cpx", meta.magnetic_types);
  for (const id of ["start", "end", "sunspot_min", "sunspot_max", "flare_occurred"]) {
    document.getElementById(id).addEventListener("change", refresh);
  }
  for (const el of document.querySelectorAll("input.cls")) {
    el.addEventListener("change", refresh);
  }
  refresh();
}

init();
</script>
</body>
</html>
`
