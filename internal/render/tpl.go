package render

// pageTpl 参数依次为：标题、过渡秒数、初始旋转、指针角度、标题、SVG、页面配置 JSON
const pageTpl = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>%s</title>
<style>
:root{--red-velvet-dark:#64121F;--red-velvet-light:#8E1F30;--gold:#D4AF37}
body{margin:0;min-height:100vh;display:flex;flex-direction:column;align-items:center;justify-content:center;background:#1a0a0d;color:#fff;font-family:Georgia,serif}
.stage{position:relative;width:400px;height:400px}
.wheel-container{width:100%%;height:100%%;transition:transform %ss cubic-bezier(.17,.67,.12,.99);transform:rotate(%sdeg)}
.wheel-container svg{width:100%%;height:100%%}
.pointer-arm{position:absolute;inset:0;transform:rotate(%sdeg);pointer-events:none}
.pointer{position:absolute;left:50%%;top:-14px;transform:translateX(-50%%);width:0;height:0;border-left:14px solid transparent;border-right:14px solid transparent;border-top:28px solid var(--gold)}
#spinButton{margin-top:28px;padding:12px 36px;font-size:18px;border:0;border-radius:24px;background:var(--gold);color:var(--red-velvet-dark);cursor:pointer}
#spinButton:disabled{opacity:.5;cursor:default}
#resultDisplay{margin-top:18px;font-size:22px;min-height:1.4em}
</style>
</head>
<body>
<h1>%s</h1>
<div class="stage">
<div class="wheel-container" id="wheel">%s</div>
<div class="pointer-arm"><div class="pointer"></div></div>
</div>
<button id="spinButton">SPIN</button>
<div id="resultDisplay"></div>
<script>
var cfg=%s;
var wheel=document.getElementById('wheel'),btn=document.getElementById('spinButton'),out=document.getElementById('resultDisplay');
var pending=null;
function apply(rot){wheel.style.transform='rotate('+rot+'deg)';}
function announce(ev){if(pending&&ev.spin_id!==pending)return;pending=null;btn.disabled=false;out.textContent=ev.text;}
function poll(id){
  fetch(cfg.stateUrl).then(function(r){return r.json();}).then(function(s){
    if(s.state==='idle'&&s.last_winner&&s.last_winner.id===id){announce({spin_id:id,text:'Winner: '+s.last_winner.winner+'!'});}
    else if(pending===id){setTimeout(function(){poll(id);},250);}
  });
}
function waitIdle(){
  fetch(cfg.stateUrl).then(function(r){return r.json();}).then(function(s){
    if(s.state==='idle'){if(!pending){btn.disabled=false;out.textContent=s.text||'';}}
    else{setTimeout(waitIdle,250);}
  }).catch(function(){btn.disabled=false;});
}
function onStarted(ev){pending=ev.spin_id;btn.disabled=true;out.textContent=ev.text||'Spinning...';apply(ev.rotation);}
try{
  var ws=new WebSocket((location.protocol==='https:'?'wss://':'ws://')+location.host+cfg.wsPath);
  ws.onmessage=function(m){var ev=JSON.parse(m.data);if(ev.type==='spin_started'){onStarted(ev);}else if(ev.type==='winner'){announce(ev);}};
}catch(e){}
btn.addEventListener('click',function(){
  btn.disabled=true;
  fetch(cfg.spinUrl,{method:'POST',headers:{'Content-Type':'application/json'},body:'{}'}).then(function(r){
    if(r.status===409){out.textContent='Already spinning...';setTimeout(waitIdle,250);return null;}
    return r.json();
  }).then(function(res){
    if(!res)return;
    onStarted({spin_id:res.spin_id,rotation:res.rotation,text:'Spinning...'});
    setTimeout(function(){poll(res.spin_id);},res.duration_ms);
  }).catch(function(){btn.disabled=false;out.textContent='Spin failed';});
});
apply(cfg.rotation);
</script>
</body>
</html>`
