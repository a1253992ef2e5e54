package store

// starterTemplate is the workspace a brand new session starts from. It
// renders on its own so the first preview is never blank.
var starterTemplate = map[string]string{
	"/App.jsx": `import "./styles.css";

export default function App() {
  return (
    <div className="welcome">
      <h1>Welcome</h1>
      <p>Describe the interface you want and it will appear here.</p>
    </div>
  );
}
`,
	"/styles.css": `.welcome {
  font-family: system-ui, sans-serif;
  display: flex;
  flex-direction: column;
  align-items: center;
  justify-content: center;
  min-height: 100vh;
  margin: 0;
  color: #1f2937;
}

.welcome h1 {
  margin-bottom: 0.25rem;
}
`,
}
