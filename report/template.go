package report

import "html/template"

var reportTemplate = template.Must(template.New("report").Parse(reportHTML))

const reportHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Training Report - Week {{.E.PlanWeek}}</title>
    <script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.0/dist/chart.umd.min.js"></script>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            padding: 20px;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            background: white;
            border-radius: 20px;
            box-shadow: 0 20px 60px rgba(0,0,0,0.3);
            overflow: hidden;
        }

        .header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 40px;
            text-align: center;
        }

        .header h1 {
            font-size: 2.5em;
            margin-bottom: 10px;
            font-weight: 700;
        }

        .header p {
            font-size: 1.2em;
            opacity: 0.9;
        }

        .content {
            padding: 40px;
        }

        .stats-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(250px, 1fr));
            gap: 20px;
            margin-bottom: 40px;
        }

        .stat-card {
            background: #f8f9fa;
            border-radius: 12px;
            padding: 25px;
            border-left: 4px solid #667eea;
        }

        .stat-label {
            font-size: 0.9em;
            color: #666;
            text-transform: uppercase;
            letter-spacing: 1px;
            margin-bottom: 10px;
        }

        .stat-value {
            font-size: 2.5em;
            font-weight: bold;
            color: #667eea;
            line-height: 1;
        }

        .stat-unit {
            font-size: 0.5em;
            color: #999;
            font-weight: normal;
        }

        .section {
            margin-bottom: 40px;
        }

        .section-title {
            font-size: 1.8em;
            margin-bottom: 20px;
            color: #2c3e50;
            border-bottom: 3px solid #667eea;
            padding-bottom: 10px;
        }

        .badge {
            display: inline-block;
            padding: 8px 16px;
            border-radius: 20px;
            font-size: 0.85em;
            font-weight: 600;
            text-transform: uppercase;
            letter-spacing: 0.5px;
        }

        .badge.success { background: #d4edda; color: #155724; }
        .badge.warning { background: #fff3cd; color: #856404; }
        .badge.danger { background: #f8d7da; color: #721c24; }
        .badge.secondary { background: #e2e3e5; color: #383d41; }

        .progress-container {
            background: #e9ecef;
            border-radius: 10px;
            overflow: hidden;
            margin: 10px 0;
            height: 30px;
            position: relative;
        }

        .progress-bar {
            height: 100%;
            background: linear-gradient(90deg, #667eea 0%, #764ba2 100%);
            display: flex;
            align-items: center;
            justify-content: center;
            color: white;
            font-weight: 600;
        }

        .comparison-table {
            width: 100%;
            border-collapse: collapse;
            margin: 20px 0;
            background: white;
            border-radius: 8px;
            overflow: hidden;
            box-shadow: 0 2px 8px rgba(0,0,0,0.1);
        }

        .comparison-table th,
        .comparison-table td {
            padding: 15px;
            text-align: left;
        }

        .comparison-table th {
            background: #667eea;
            color: white;
            font-weight: 600;
            text-transform: uppercase;
            font-size: 0.9em;
            letter-spacing: 0.5px;
        }

        .comparison-table tr:nth-child(even) { background: #f8f9fa; }

        .chart-container {
            position: relative;
            height: 300px;
            margin: 30px 0;
            background: white;
            padding: 20px;
            border-radius: 12px;
            box-shadow: 0 2px 8px rgba(0,0,0,0.1);
        }

        .alert {
            padding: 20px;
            border-radius: 8px;
            margin: 20px 0;
            border-left: 4px solid;
        }

        .alert.success { background: #d4edda; border-color: #28a745; color: #155724; }
        .alert.warning { background: #fff3cd; border-color: #ffc107; color: #856404; }
        .alert.danger { background: #f8d7da; border-color: #dc3545; color: #721c24; }
        .alert.info { background: #d1ecf1; border-color: #17a2b8; color: #0c5460; }

        .recommendations {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 30px;
            border-radius: 12px;
            margin: 30px 0;
        }

        .recommendations h3 {
            margin-bottom: 15px;
            font-size: 1.5em;
        }

        .recommendations ul {
            list-style: none;
            padding: 0;
        }

        .recommendations li {
            padding: 10px 0;
            padding-left: 30px;
            position: relative;
        }

        .recommendations li:before {
            content: "→";
            position: absolute;
            left: 0;
            font-weight: bold;
            font-size: 1.2em;
        }

        .footer {
            text-align: center;
            padding: 30px;
            background: #f8f9fa;
            color: #666;
            font-size: 0.9em;
        }

        @media print {
            body { background: white; padding: 0; }
            .container { box-shadow: none; }
        }

        @media (max-width: 768px) {
            .stats-grid { grid-template-columns: 1fr; }
            .header h1 { font-size: 1.8em; }
            .content { padding: 20px; }
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🏃‍♂️ Training Analysis Report</h1>
            <p>{{.Meta.RaceName}} Preparation</p>
            <p style="margin-top: 10px; font-size: 1em;">Week {{.E.PlanWeek}} of {{.Meta.PlanWeeks}} • {{.E.Phase.Name}}</p>
        </div>

        <div class="content">
            <!-- Race Countdown -->
            <div class="alert info">
                <strong>🎯 Race Countdown:</strong> {{.E.Countdown.Days}} days ({{printf "%.0f" .E.Countdown.Weeks}} weeks) until {{.Meta.RaceName}}
            </div>

            <!-- Key Stats -->
            <div class="section">
                <h2 class="section-title">📊 Key Statistics</h2>
                <div class="stats-grid">
                    <div class="stat-card">
                        <div class="stat-label">Weekly Distance</div>
                        <div class="stat-value">{{printf "%.1f" .E.FourWeek.WeeklyDistanceKm}} <span class="stat-unit">km</span></div>
                    </div>
                    <div class="stat-card">
                        <div class="stat-label">Weekly Elevation</div>
                        <div class="stat-value">{{printf "%.0f" .E.FourWeek.WeeklyElevationM}} <span class="stat-unit">m</span></div>
                    </div>
                    <div class="stat-card">
                        <div class="stat-label">Total Runs (4 weeks)</div>
                        <div class="stat-value">{{.E.FourWeek.Runs}}</div>
                    </div>
                    <div class="stat-card">
                        <div class="stat-label">Average HR</div>
                        <div class="stat-value">{{.AvgHR}} <span class="stat-unit">bpm</span></div>
                    </div>
                </div>
            </div>

            <!-- Marathon Recovery -->
            <div class="section">
                <h2 class="section-title">🏃 Marathon Recovery Status</h2>
                <p><strong>Marathon Date:</strong> {{.Meta.MarathonDate.Format "2006-01-02"}}</p>
                <p><strong>Days Since Marathon:</strong> {{.E.Recovery.DaysSince}} days ({{printf "%.1f" .E.Recovery.WeeksSince}} weeks)</p>
                <p><strong>Marathon Time:</strong> {{.Meta.MarathonTime}}</p>
                <p style="margin-top: 15px;"><strong>Status:</strong> <span class="badge {{.RecoveryClass}}">{{.E.Recovery.Status}}</span></p>
                <p style="margin-top: 10px;"><strong>Post-Marathon Running:</strong> {{.E.Recovery.Runs}} runs, {{printf "%.1f" .E.Recovery.DistanceKm}} km total (avg {{printf "%.1f" .E.Recovery.AvgRunKm}} km/run)</p>
            </div>

            <!-- Week Progress -->
            <div class="section">
                <h2 class="section-title">🎯 Week {{.E.PlanWeek}} Progress vs Plan</h2>

                <table class="comparison-table">
                    <thead>
                        <tr>
                            <th>Metric</th>
                            <th>Actual</th>
                            <th>Target</th>
                            <th>Progress</th>
                        </tr>
                    </thead>
                    <tbody>
                        <tr>
                            <td><strong>Distance (km)</strong></td>
                            <td>{{printf "%.1f" .E.LastWeek.DistanceKm}} km</td>
                            <td>{{printf "%.0f" .E.Plan.Target.DistanceKm}} km</td>
                            <td>
                                <div class="progress-container">
                                    <div class="progress-bar" style="width: {{printf "%.0f" .DistanceBar}}%">{{printf "%.0f" .E.Plan.DistancePct}}%</div>
                                </div>
                            </td>
                        </tr>
                        <tr>
                            <td><strong>Elevation (m)</strong></td>
                            <td>{{printf "%.0f" .E.LastWeek.ElevationM}} m</td>
                            <td>{{printf "%.0f" .E.Plan.Target.ElevationM}} m</td>
                            <td>
                                <div class="progress-container">
                                    <div class="progress-bar" style="width: {{printf "%.0f" .ElevationBar}}%">{{printf "%.0f" .E.Plan.ElevationPct}}%</div>
                                </div>
                            </td>
                        </tr>
                        <tr>
                            <td><strong>Number of Runs</strong></td>
                            <td>{{.E.LastWeek.Runs}}</td>
                            <td>{{.E.Plan.Target.Runs}}</td>
                            <td>
                                <div class="progress-container">
                                    <div class="progress-bar" style="width: {{printf "%.0f" .RunsBar}}%">{{printf "%.0f" .E.Plan.RunsPct}}%</div>
                                </div>
                            </td>
                        </tr>
                    </tbody>
                </table>

                <div class="alert {{.AssessmentClass}}" style="margin-top: 20px;">
                    <strong>{{.AssessmentIcon}} Assessment:</strong> {{.E.Plan.Assessment}}
                </div>
            </div>

            <!-- Charts -->
            <div class="section">
                <h2 class="section-title">📈 Training Trends (Last 8 Weeks)</h2>
                <div class="chart-container">
                    <canvas id="distanceChart"></canvas>
                </div>
                <div class="chart-container">
                    <canvas id="elevationChart"></canvas>
                </div>
            </div>

            <!-- HR Analysis -->
            <div class="section">
                <h2 class="section-title">❤️ Heart Rate &amp; Recovery</h2>
                <div class="stats-grid">
                    <div class="stat-card">
                        <div class="stat-label">Avg HR (last 10 runs)</div>
                        <div class="stat-value">{{.AvgHR}} <span class="stat-unit">bpm</span></div>
                    </div>
                    <div class="stat-card">
                        <div class="stat-label">Avg Max HR</div>
                        <div class="stat-value">{{.AvgMaxHR}} <span class="stat-unit">bpm</span></div>
                    </div>
                    <div class="stat-card">
                        <div class="stat-label">Training Load</div>
                        <div class="stat-value">{{.AvgTE}}</div>
                    </div>
                    <div class="stat-card">
                        <div class="stat-label">Load Status</div>
                        <div class="stat-value" style="font-size: 1.2em;"><span class="badge {{.LoadClass}}">{{.E.Load.Status}}</span></div>
                    </div>
                </div>
            </div>

            <!-- Recommendations -->
            <div class="recommendations">
                <h3>💡 Recommendations for Next Week</h3>
                <p style="margin-bottom: 15px;"><strong>Current Phase:</strong> {{.E.Phase.Name}}</p>
                <p style="margin-bottom: 15px;"><strong>Focus:</strong> {{.E.Phase.Focus}}</p>
                <ul>
                    <li>Target weekly distance: {{printf "%.0f" .E.NextTarget.DistanceKm}} km</li>
                    <li>Target elevation gain: {{printf "%.0f" .E.NextTarget.ElevationM}} m</li>
                    <li>Use your 22km work commute for long run</li>
                    <li>Maintain weekly gym session (squats, lunges, Nordic curls)</li>
                    <li>Practice race nutrition on runs &gt;90 minutes</li>
                    <li>Use stair machine 2-3x per week for elevation work</li>
                </ul>
            </div>
        </div>

        <div class="footer">
            <p>Generated: {{.Meta.GeneratedAt.Format "2006-01-02 15:04:05"}}</p>
            <p>{{.Meta.RaceName}} Training Analysis • Week {{.E.PlanWeek}} of {{.Meta.PlanWeeks}}</p>
        </div>
    </div>

    <script>
        // Distance Chart
        const distanceCtx = document.getElementById('distanceChart').getContext('2d');
        new Chart(distanceCtx, {
            type: 'line',
            data: {
                labels: {{.ChartLabels}},
                datasets: [{
                    label: 'Weekly Distance (km)',
                    data: {{.ChartDistances}},
                    borderColor: '#667eea',
                    backgroundColor: 'rgba(102, 126, 234, 0.1)',
                    borderWidth: 3,
                    fill: true,
                    tension: 0.4,
                    pointRadius: 5,
                    pointHoverRadius: 7
                }]
            },
            options: {
                responsive: true,
                maintainAspectRatio: false,
                plugins: {
                    legend: { display: true, position: 'top' },
                    title: {
                        display: true,
                        text: 'Weekly Distance Trend',
                        font: { size: 16, weight: 'bold' }
                    }
                },
                scales: {
                    y: {
                        beginAtZero: true,
                        title: { display: true, text: 'Distance (km)' }
                    }
                }
            }
        });

        // Elevation Chart
        const elevationCtx = document.getElementById('elevationChart').getContext('2d');
        new Chart(elevationCtx, {
            type: 'bar',
            data: {
                labels: {{.ChartLabels}},
                datasets: [{
                    label: 'Weekly Elevation (m)',
                    data: {{.ChartElevations}},
                    backgroundColor: 'rgba(118, 75, 162, 0.8)',
                    borderColor: '#764ba2',
                    borderWidth: 2
                }]
            },
            options: {
                responsive: true,
                maintainAspectRatio: false,
                plugins: {
                    legend: { display: true, position: 'top' },
                    title: {
                        display: true,
                        text: 'Weekly Elevation Gain',
                        font: { size: 16, weight: 'bold' }
                    }
                },
                scales: {
                    y: {
                        beginAtZero: true,
                        title: { display: true, text: 'Elevation (m)' }
                    }
                }
            }
        });
    </script>
</body>
</html>
`
